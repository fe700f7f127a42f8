package bwcfn

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// HandlerFunc holds the caller's resource provisioning logic. It is invoked
// exactly once per lifecycle event. The returned map becomes the response's
// Data field (nil for no data); a returned error becomes a FAILED response
// delivered to CloudFormation, not an invocation failure.
type HandlerFunc[P any] func(ctx context.Context, req Request[P]) (map[string]any, error)

// options configures Process.
type options struct {
	client *http.Client
	logger *zap.Logger
}

// Option configures the processing of lifecycle events.
type Option func(*options)

// WithHTTPClient sets the client used for the response PUT. Use this to
// inject an instrumented transport; the default is a plain http.Client.
// Deliberately no client-level timeout is imposed: the Lambda invocation
// deadline bounds the PUT, and CloudFormation runs its own (much longer)
// timeout waiting for the response.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.client = client }
}

// WithLogger sets the logger for per-invocation progress and handler
// failures. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Process wraps a handler into the function signature consumed by the Lambda
// Go runtime. Per invocation it parses the raw event, invokes the handler,
// converts the outcome via Request.ToResponse and PUTs the result to the
// event's response URL.
//
// The returned error is the invocation's own outcome, and it is decoupled
// from the handler's: a handler error that is delivered as a FAILED response
// still counts as a successful invocation. Only an unparseable event or an
// undelivered PUT fail the invocation, and retrying those is left to the
// runtime's retry policy.
func Process[P any](h HandlerFunc[P], opts ...Option) func(context.Context, json.RawMessage) error {
	o := options{
		client: &http.Client{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, payload json.RawMessage) error {
		req, err := ParseRequest[P](payload)
		if err != nil {
			return err
		}

		log := o.logger.With(
			zap.String("request_type", string(req.RequestType)),
			zap.String("request_id", req.RequestID),
			zap.String("logical_resource_id", req.LogicalResourceID),
		)
		log.Info("processing custom resource event",
			zap.String("resource_type", req.ResourceType))

		data, herr := h(ctx, req)
		if herr != nil {
			log.Warn("handler failed, reporting FAILED to CloudFormation",
				zap.Error(herr))
		}

		resp := req.ToResponse(data, herr)
		if err := o.submit(ctx, req.ResponseURL, resp); err != nil {
			log.Error("delivering response failed", zap.Error(err))
			return err
		}

		log.Info("response delivered", zap.String("status", string(resp.Status)))
		return nil
	}
}

// Start registers the handler with the Lambda Go runtime and blocks serving
// invocations. It is the usual body of a provider's main function.
func Start[P any](h HandlerFunc[P], opts ...Option) {
	lambda.Start(Process(h, opts...))
}

// submit PUTs the serialized response to the presigned URL. The Content-Type
// header must be empty: the URL's signature covers an empty content type and
// S3 rejects the PUT otherwise.
func (o options) submit(ctx context.Context, url string, resp Response) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "encoding response")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building response request")
	}
	httpReq.Header.Set("Content-Type", "")

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "delivering response")
	}
	defer httpResp.Body.Close()
	_, _ = io.Copy(io.Discard, httpResp.Body)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return errors.Newf("response URL returned status %d", httpResp.StatusCode)
	}
	return nil
}
