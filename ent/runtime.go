// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepdeck/prepdeck/ent/credential"
	"github.com/prepdeck/prepdeck/ent/schema"
	"github.com/prepdeck/prepdeck/ent/syncevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescKey is the schema descriptor for key field.
	credentialDescKey := credentialFields[0].Descriptor()
	// credential.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	credential.KeyValidator = credentialDescKey.Validators[0].(func(string) error)
	// credentialDescUpdatedAt is the schema descriptor for updated_at field.
	credentialDescUpdatedAt := credentialFields[2].Descriptor()
	// credential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credential.DefaultUpdatedAt = credentialDescUpdatedAt.Default.(func() time.Time)
	// credential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credential.UpdateDefaultUpdatedAt = credentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescRequestID is the schema descriptor for request_id field.
	synceventDescRequestID := synceventFields[0].Descriptor()
	// syncevent.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	syncevent.RequestIDValidator = synceventDescRequestID.Validators[0].(func(string) error)
	// synceventDescSurface is the schema descriptor for surface field.
	synceventDescSurface := synceventFields[2].Descriptor()
	// syncevent.SurfaceValidator is a validator for the "surface" field. It is called by the builders before save.
	syncevent.SurfaceValidator = synceventDescSurface.Validators[0].(func(string) error)
	// synceventDescAction is the schema descriptor for action field.
	synceventDescAction := synceventFields[4].Descriptor()
	// syncevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	syncevent.ActionValidator = synceventDescAction.Validators[0].(func(string) error)
	// synceventDescSelectedOption is the schema descriptor for selected_option field.
	synceventDescSelectedOption := synceventFields[5].Descriptor()
	// syncevent.DefaultSelectedOption holds the default value on creation for the selected_option field.
	syncevent.DefaultSelectedOption = synceventDescSelectedOption.Default.(int)
	// synceventDescFlagged is the schema descriptor for flagged field.
	synceventDescFlagged := synceventFields[6].Descriptor()
	// syncevent.DefaultFlagged holds the default value on creation for the flagged field.
	syncevent.DefaultFlagged = synceventDescFlagged.Default.(bool)
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventFields[9].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
}
