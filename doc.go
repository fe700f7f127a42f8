// Package bwcfn implements the provider side of AWS CloudFormation custom
// resources for Lambda functions.
//
// # Overview
//
// When a stack containing a custom resource is created, updated or deleted,
// CloudFormation invokes the provider Lambda with a lifecycle event and waits
// for the outcome to be delivered via HTTP PUT to a presigned URL embedded in
// the event. bwcfn handles that envelope: it decodes and validates the event
// into a typed [Request], invokes your handler exactly once, maps the
// handler's outcome onto the [Response] wire contract, and submits it. A
// complete provider is a single call:
//
//	func main() {
//	    bwcfn.Start(func(ctx context.Context, req bwcfn.Request[Props]) (map[string]any, error) {
//	        switch req.RequestType {
//	        case bwcfn.RequestCreate:
//	            // provision, optionally return attribute data for Fn::GetAtt
//	            return map[string]any{"Endpoint": "https://..."}, nil
//	        case bwcfn.RequestUpdate:
//	            return nil, nil
//	        case bwcfn.RequestDelete:
//	            return nil, nil
//	        }
//	        return nil, nil
//	    })
//	}
//
// # Resource properties
//
// The template developer's Properties block is decoded into the type
// parameter P. Use your own struct for strict typing, a pointer type if the
// block is optional, or [Ignored] if you don't care about its contents at
// all.
//
// # Physical resource IDs
//
// Every resource needs a physical resource ID that is stable across retried
// deliveries of the same event. For Update and Delete the ID arrives in the
// event and is echoed back verbatim. For Create the ID is derived: if P
// implements [PhysicalResourceIDSuffixProvider] the suffix comes from your
// properties, otherwise a deterministic digest of the resource type and
// properties is used. Derivation never fails; see
// [FallbackPhysicalResourceID].
//
// # Outcome mapping
//
// A nil handler error becomes a SUCCESS response, with the returned map (if
// any) serialized into the Data field. A non-nil error becomes a FAILED
// response whose Reason is the error text; CloudFormation shows the reason in
// the stack event history and rolls back. In both cases the invocation itself
// succeeds as long as the PUT is delivered. Only two things fail the
// invocation: an event that cannot be decoded or validated, and a PUT that
// does not complete with a 2xx status. Retrying either is the Lambda
// runtime's job, not bwcfn's.
package bwcfn
