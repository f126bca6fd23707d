package trm

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewManager создает менеджер транзакций. Уровень изоляции — read committed,
// авторитетная проверка остатков делается блокировкой строк в репозитории
func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	if tx := ExtractTx(ctx); tx != nil {
		// уже внутри транзакции, вложенную не открываем
		return ctx, nopTransaction{}, nil
	}
	tx, err := t.db.BeginTxx(ctx, t.opts)
	if err != nil {
		return nil, nil, err
	}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	outermost := ExtractTx(ctx) == nil

	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var hooks *commitHooks
	if outermost {
		hooks = &commitHooks{}
		ctx = context.WithValue(ctx, hooksKey{}, hooks)
	}

	if err := callback(ctx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	if hooks != nil {
		hooks.run()
	}
	return nil
}

// nopTransaction позволяет сервисам вызывать друг друга внутри одной
// транзакции: commit и rollback делает только внешний Do
type nopTransaction struct{}

func (nopTransaction) Commit() error   { return nil }
func (nopTransaction) Rollback() error { return nil }

type hooksKey struct{}

type commitHooks struct {
	fns []func()
}

func (h *commitHooks) run() {
	for _, fn := range h.fns {
		fn()
	}
}

// OnCommit откладывает побочный эффект (инвалидация кеша, публикация события)
// до фиксации внешней транзакции. Откат транзакции отбрасывает отложенное.
// Вне транзакции fn выполняется сразу
func OnCommit(ctx context.Context, fn func()) {
	if h, ok := ctx.Value(hooksKey{}).(*commitHooks); ok {
		h.fns = append(h.fns, fn)
		return
	}
	fn()
}
