package dbmetrics

import "context"

type executorCtxKey struct{}

// WithExecutor кладет executor (обычно активную транзакцию) в контекст.
// Репозитории достают его через GetExecutor и выполняют запросы в рамках
// этой транзакции.
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, executor)
}

// GetExecutor возвращает executor из контекста, если он там есть,
// иначе переданный fallback (обычно основной пул соединений)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction проверяет, выполняется ли запрос внутри транзакции
// (используется, например, для добавления FOR UPDATE)
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey{}).(DBExecutor)
	return ok
}
