package picker

import "context"

// ColorRequest is one pending colour prompt. The console answers it with
// Resolve; only the first answer counts.
type ColorRequest struct {
	Initial string
	reply   chan Result
}

func (r ColorRequest) Resolve(res Result) {
	select {
	case r.reply <- res:
	default:
	}
}

// PromptColorPicker forwards colour requests to whoever reads Requests, so a
// console form can stand in for a native colour dialog.
type PromptColorPicker struct {
	requests chan ColorRequest
}

func NewPromptColorPicker() *PromptColorPicker {
	return &PromptColorPicker{requests: make(chan ColorRequest)}
}

func (p *PromptColorPicker) Requests() <-chan ColorRequest {
	return p.requests
}

func (p *PromptColorPicker) PickColor(ctx context.Context, initial string) (Result, error) {
	req := ColorRequest{Initial: initial, reply: make(chan Result, 1)}
	select {
	case <-ctx.Done():
		return Cancelled, ctx.Err()
	case p.requests <- req:
	}
	select {
	case <-ctx.Done():
		return Cancelled, ctx.Err()
	case res := <-req.reply:
		return res, nil
	}
}
