package service

import "context"

// Flush дожидается обработки всех событий, поставленных в очередь до вызова
func (t *Tracker) Flush(ctx context.Context) error {
	return t.do(ctx, func(context.Context) error { return nil })
}
