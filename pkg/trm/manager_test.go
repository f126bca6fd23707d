package trm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTx_EmptyContext(t *testing.T) {
	assert.Nil(t, ExtractTx(context.Background()))
}

func TestOnCommit_ImmediateOutsideTransaction(t *testing.T) {
	called := false
	OnCommit(context.Background(), func() { called = true })
	assert.True(t, called)
}

func TestOnCommit_DeferredUntilCommit(t *testing.T) {
	hooks := &commitHooks{}
	ctx := context.WithValue(context.Background(), hooksKey{}, hooks)

	var calls []string
	OnCommit(ctx, func() { calls = append(calls, "cache") })
	OnCommit(ctx, func() { calls = append(calls, "notify") })
	assert.Empty(t, calls)

	hooks.run()
	assert.Equal(t, []string{"cache", "notify"}, calls)
}

func TestOnCommit_DroppedWithoutCommit(t *testing.T) {
	hooks := &commitHooks{}
	ctx := context.WithValue(context.Background(), hooksKey{}, hooks)

	called := false
	OnCommit(ctx, func() { called = true })
	// откат: run не вызывается, эффект не должен просочиться
	assert.False(t, called)
}
