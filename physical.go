package bwcfn

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// PhysicalResourceIDSuffixProvider lets a properties type control the suffix
// of physical resource IDs derived for Create events. Choose the suffix from
// content that only changes when a genuinely new physical resource must be
// provisioned; CloudFormation treats a changed physical ID as a replacement.
//
// Implementations must be total and deterministic: the same logical identity
// and properties must yield the same suffix across retried deliveries of the
// same event (CloudFormation delivers at least once), and a strategy that can
// internally fail must collapse to a constant instead of propagating.
//
// Properties types that do not implement this interface get a deterministic
// digest of the resource type and properties as their suffix.
type PhysicalResourceIDSuffixProvider interface {
	PhysicalResourceIDSuffix() string
}

// FallbackPhysicalResourceID is substituted for any part of a derived
// physical resource ID that cannot be computed. Derivation never fails; it
// degrades to this constant.
const FallbackPhysicalResourceID = "unknown"

const physicalIDPrefix = "arn:custom:cfn-resource-provider:::"

// PhysicalID resolves the physical resource ID for the request. Update and
// Delete events carry the ID and it is returned as stored; the provider must
// keep it stable for the lifetime of the resource. For Create events no ID
// exists yet and one is derived as
//
//	arn:custom:cfn-resource-provider:::{stack-guid}-{logical-id}[/{suffix}]
//
// where stack-guid is the trailing segment of the stack ARN and the suffix
// comes from the properties type, see PhysicalResourceIDSuffixProvider.
func (r Request[P]) PhysicalID() string {
	switch r.RequestType {
	case RequestUpdate, RequestDelete:
		return r.PhysicalResourceID
	default:
		return r.derivePhysicalID()
	}
}

func (r Request[P]) derivePhysicalID() string {
	guid := r.StackID
	if i := strings.LastIndex(guid, "/"); i >= 0 {
		guid = guid[i+1:]
	}
	if guid == "" {
		guid = FallbackPhysicalResourceID
	}

	id := fmt.Sprintf("%s%s-%s", physicalIDPrefix, guid, r.LogicalResourceID)
	if suffix := r.suffix(); suffix != "" {
		id += "/" + suffix
	}
	return id
}

// suffix consults the properties type first and falls back to a digest of
// the resource type and properties. json.Marshal sorts map keys, so the
// digest is stable for equal property values.
func (r Request[P]) suffix() string {
	if p, ok := any(r.ResourceProperties).(PhysicalResourceIDSuffixProvider); ok {
		return p.PhysicalResourceIDSuffix()
	}
	props, err := json.Marshal(r.ResourceProperties)
	if err != nil {
		return FallbackPhysicalResourceID
	}
	sum := sha256.Sum256(append([]byte(r.ResourceType+"|"), props...))
	return hex.EncodeToString(sum[:6])
}
