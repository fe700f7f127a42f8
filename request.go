package bwcfn

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// RequestType discriminates the three lifecycle events CloudFormation sends
// for a custom resource.
type RequestType string

const (
	RequestCreate RequestType = "Create"
	RequestUpdate RequestType = "Update"
	RequestDelete RequestType = "Delete"
)

// Request is a decoded custom resource lifecycle event. The type parameter P
// receives the template developer's Properties block; see the package
// documentation for choices when the block is optional or irrelevant.
//
// Field names follow the CloudFormation custom resource request wire format.
// PhysicalResourceID is only populated for Update and Delete events, and
// OldResourceProperties only for Update events.
type Request[P any] struct {
	// RequestType is Create, Update or Delete.
	RequestType RequestType `json:"RequestType" validate:"required,oneof=Create Update Delete"`
	// RequestID uniquely identifies this invocation. CloudFormation
	// correlates the response by it, so it is echoed verbatim.
	RequestID string `json:"RequestId" validate:"required"`
	// ResponseURL is the presigned S3 URL the response must be PUT to. The
	// URL is single-use and time-limited; its signature is the only
	// authorization the PUT needs.
	ResponseURL string `json:"ResponseURL" validate:"required"`
	// ResourceType is the developer-chosen type name, e.g. Custom::Thing.
	ResourceType string `json:"ResourceType" validate:"required"`
	// LogicalResourceID is the template-scoped name of the resource.
	LogicalResourceID string `json:"LogicalResourceId" validate:"required"`
	// StackID is the ARN of the stack that owns the resource.
	StackID string `json:"StackId" validate:"required"`
	// PhysicalResourceID identifies the already-provisioned resource. It is
	// required for Update and Delete; for Create it does not exist yet and
	// is derived, see PhysicalID.
	PhysicalResourceID string `json:"PhysicalResourceId" validate:"required_unless=RequestType Create"`
	// ResourceProperties is the Properties block of the template.
	ResourceProperties P `json:"ResourceProperties"`
	// OldResourceProperties holds the prior property values on Update.
	OldResourceProperties P `json:"OldResourceProperties"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseRequest decodes and validates a raw invocation payload. A payload that
// does not decode, or that fails envelope validation (e.g. a Delete without a
// PhysicalResourceId), is fatal to the invocation: no response can be
// produced from it.
func ParseRequest[P any](payload []byte) (Request[P], error) {
	var req Request[P]
	if err := json.Unmarshal(payload, &req); err != nil {
		return req, errors.Wrap(err, "decoding custom resource event")
	}
	if err := validate.Struct(req); err != nil {
		return req, errors.Wrap(err, "validating custom resource event")
	}
	return req, nil
}

// Ignored is a placeholder properties type for resources that take no
// properties. It decodes successfully from any payload shape, discarding the
// contents, and derives an empty physical resource ID suffix.
type Ignored struct{}

// UnmarshalJSON accepts and discards any input.
func (*Ignored) UnmarshalJSON([]byte) error { return nil }

// PhysicalResourceIDSuffix returns the empty suffix.
func (Ignored) PhysicalResourceIDSuffix() string { return "" }
