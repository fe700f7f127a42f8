package bwcfn

// Status is the outcome reported to CloudFormation.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Response is the payload CloudFormation expects at the presigned response
// URL. Construct it through Request.ToResponse so every correlation field is
// sourced from the originating event; CloudFormation matches response to
// request by RequestId, LogicalResourceId, StackId and PhysicalResourceId.
type Response struct {
	Status Status `json:"Status"`
	// Reason describes the failure; only set on FAILED responses, where
	// CloudFormation shows it in the stack event history.
	Reason             string `json:"Reason,omitempty"`
	PhysicalResourceID string `json:"PhysicalResourceId"`
	StackID            string `json:"StackId"`
	RequestID          string `json:"RequestId"`
	LogicalResourceID  string `json:"LogicalResourceId"`
	// NoEcho masks the resource's attribute values in the stack event log.
	NoEcho bool `json:"NoEcho,omitempty"`
	// Data carries name-value pairs the template can read with Fn::GetAtt.
	Data map[string]any `json:"Data,omitempty"`
}

// ToResponse maps a handler outcome onto the response envelope. A nil err
// yields a SUCCESS response carrying data (nil data means no Data field on
// the wire); a non-nil err yields a FAILED response whose Reason is the
// error text. Either way the correlation fields are echoed from the request
// and the physical resource ID is resolved via PhysicalID, which cannot
// fail.
func (r Request[P]) ToResponse(data map[string]any, err error) Response {
	resp := Response{
		Status:             StatusSuccess,
		PhysicalResourceID: r.PhysicalID(),
		StackID:            r.StackID,
		RequestID:          r.RequestID,
		LogicalResourceID:  r.LogicalResourceID,
		Data:               data,
	}
	if err != nil {
		resp.Status = StatusFailed
		resp.Reason = err.Error()
		resp.Data = nil
	}
	return resp
}
