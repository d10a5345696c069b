package resolver

import "context"

type requestInfoKey struct{}

type requestInfo struct {
	endpoint string
	method   string
}

// WithRequestInfo attaches the endpoint and method recorded in request logs of resolutions made with ctx.
func WithRequestInfo(ctx context.Context, endpoint, method string) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, requestInfo{endpoint: endpoint, method: method})
}

func requestInfoFrom(ctx context.Context, operation string) (endpoint, method string) {
	info, _ := ctx.Value(requestInfoKey{}).(requestInfo)
	endpoint, method = info.endpoint, info.method
	if endpoint == "" {
		endpoint = "resolver/" + operation
	}
	if method == "" {
		method = defaultMethod
	}
	return endpoint, method
}
