package billing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/bill"
	"encore.app/billing/business/ledger"
	"encore.app/billing/business/pool"
	"encore.app/billing/business/reward"
	"encore.app/billing/domain"
	"encore.app/billing/store"
	"encore.app/billing/workflow"
)

var feeezDB = sqldb.NewDatabase("feeez", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "billing-task-queue"

//encore:service
type Service struct {
	ledger  ledger.Business
	bills   bill.Business
	pools   pool.Business
	rewards reward.Business

	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](feeezDB)

	queries := store.New(pgxdb)
	txManager := domain.NewTxManager(pgxdb)

	ledgerBusiness := ledger.NewLedgerBusiness(txManager, queries)
	billBusiness := bill.NewBillBusiness(
		queries,
		domain.NewBillStateMachine(txManager),
		domain.NewPaymentStateMachine(txManager),
		ledgerBusiness,
	)
	poolBusiness := pool.NewPoolBusiness(
		queries,
		domain.NewPoolStateMachine(txManager),
		ledgerBusiness,
	)
	rewardBusiness := reward.NewRewardBusiness(queries, txManager)

	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, err
	}

	workflow.SetActivityDependencies(billBusiness, poolBusiness)

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillSchedule)
	w.RegisterWorkflow(workflow.EscrowDeadline)
	w.RegisterWorkflow(workflow.PoolDeadline)
	w.RegisterActivity(workflow.ExecuteScheduledPaymentActivity)
	w.RegisterActivity(workflow.RefundExpiredPaymentActivity)
	w.RegisterActivity(workflow.ExpirePoolActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, err
	}

	rlog.Info("billing service initialized", "taskQueue", taskQueue)

	return &Service{
		ledger:   ledgerBusiness,
		bills:    billBusiness,
		pools:    poolBusiness,
		rewards:  rewardBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
