package handler

type ContextKey string

var (
	SquireInfoCtx ContextKey = "squireInfo"
)
