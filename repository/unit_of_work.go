package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every FindBy* method when no row matches.
var ErrNotFound = errors.New("record not found")

type changeSetKey struct{}

// changeSet collects the mutations staged by repositories for a single operation.
type changeSet struct {
	mu  sync.Mutex
	ops []func(tx *gorm.DB) error
}

func (c *changeSet) add(op func(tx *gorm.DB) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

func (c *changeSet) drain() []func(tx *gorm.DB) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	ops := c.ops
	c.ops = nil
	return ops
}

// UnitOfWork flushes staged repository mutations in one transaction
type UnitOfWork struct {
	DB *gorm.DB
}

// NewUnitOfWork creates a new instance of UnitOfWork
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{DB: db}
}

// Begin returns a context carrying a fresh change set. Repository mutations made
// with the returned context are staged until Complete is called.
func (u *UnitOfWork) Begin(ctx context.Context) context.Context {
	return context.WithValue(ctx, changeSetKey{}, &changeSet{})
}

// Complete commits the staged mutations atomically. With nothing staged it does nothing.
func (u *UnitOfWork) Complete(ctx context.Context) error {
	cs, ok := ctx.Value(changeSetKey{}).(*changeSet)
	if !ok {
		return nil
	}
	ops := cs.drain()
	if len(ops) == 0 {
		return nil
	}

	err := u.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}

// stage queues op on the change set carried by ctx, or runs it right away
// when ctx has none.
func stage(ctx context.Context, db *gorm.DB, op func(tx *gorm.DB) error) error {
	if cs, ok := ctx.Value(changeSetKey{}).(*changeSet); ok {
		cs.add(op)
		return nil
	}
	return op(db.WithContext(ctx))
}

// translateFindError maps gorm's not-found error onto ErrNotFound and wraps the rest.
func translateFindError(err error, entity string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to get %s by %v: %w", entity, id, err)
}
