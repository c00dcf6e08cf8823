// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"oaflow.io/oaflow/ent/attachment"
	"oaflow.io/oaflow/ent/delegation"
	"oaflow.io/oaflow/ent/department"
	"oaflow.io/oaflow/ent/notification"
	"oaflow.io/oaflow/ent/request"
	"oaflow.io/oaflow/ent/requestevent"
	"oaflow.io/oaflow/ent/requestwatcher"
	"oaflow.io/oaflow/ent/schema"
	"oaflow.io/oaflow/ent/task"
	"oaflow.io/oaflow/ent/user"
	"oaflow.io/oaflow/ent/workflowvariant"
	"oaflow.io/oaflow/ent/workflowvariantstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attachmentMixin := schema.Attachment{}.Mixin()
	attachmentMixinFields0 := attachmentMixin[0].Fields()
	_ = attachmentMixinFields0
	attachmentFields := schema.Attachment{}.Fields()
	_ = attachmentFields
	// attachmentDescCreatedAt is the schema descriptor for created_at field.
	attachmentDescCreatedAt := attachmentMixinFields0[0].Descriptor()
	// attachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	attachment.DefaultCreatedAt = attachmentDescCreatedAt.Default.(func() time.Time)
	// attachmentDescFilename is the schema descriptor for filename field.
	attachmentDescFilename := attachmentFields[2].Descriptor()
	// attachment.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	attachment.FilenameValidator = attachmentDescFilename.Validators[0].(func(string) error)
	// attachmentDescContentType is the schema descriptor for content_type field.
	attachmentDescContentType := attachmentFields[3].Descriptor()
	// attachment.DefaultContentType holds the default value on creation for the content_type field.
	attachment.DefaultContentType = attachmentDescContentType.Default.(string)
	// attachmentDescStoragePath is the schema descriptor for storage_path field.
	attachmentDescStoragePath := attachmentFields[5].Descriptor()
	// attachment.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	attachment.StoragePathValidator = attachmentDescStoragePath.Validators[0].(func(string) error)
	delegationMixin := schema.Delegation{}.Mixin()
	delegationMixinFields0 := delegationMixin[0].Fields()
	_ = delegationMixinFields0
	delegationFields := schema.Delegation{}.Fields()
	_ = delegationFields
	// delegationDescCreatedAt is the schema descriptor for created_at field.
	delegationDescCreatedAt := delegationMixinFields0[0].Descriptor()
	// delegation.DefaultCreatedAt holds the default value on creation for the created_at field.
	delegation.DefaultCreatedAt = delegationDescCreatedAt.Default.(func() time.Time)
	// delegationDescUpdatedAt is the schema descriptor for updated_at field.
	delegationDescUpdatedAt := delegationMixinFields0[1].Descriptor()
	// delegation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	delegation.DefaultUpdatedAt = delegationDescUpdatedAt.Default.(func() time.Time)
	// delegation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	delegation.UpdateDefaultUpdatedAt = delegationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// delegationDescActive is the schema descriptor for active field.
	delegationDescActive := delegationFields[2].Descriptor()
	// delegation.DefaultActive holds the default value on creation for the active field.
	delegation.DefaultActive = delegationDescActive.Default.(bool)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields0[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields0[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[0].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = departmentDescName.Validators[0].(func(string) error)
	// departmentDescCode is the schema descriptor for code field.
	departmentDescCode := departmentFields[1].Descriptor()
	// department.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	department.CodeValidator = departmentDescCode.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescEventType is the schema descriptor for event_type field.
	notificationDescEventType := notificationFields[2].Descriptor()
	// notification.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	notification.EventTypeValidator = notificationDescEventType.Validators[0].(func(string) error)
	requestMixin := schema.Request{}.Mixin()
	requestMixinFields0 := requestMixin[0].Fields()
	_ = requestMixinFields0
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescCreatedAt is the schema descriptor for created_at field.
	requestDescCreatedAt := requestMixinFields0[0].Descriptor()
	// request.DefaultCreatedAt holds the default value on creation for the created_at field.
	request.DefaultCreatedAt = requestDescCreatedAt.Default.(func() time.Time)
	// requestDescUpdatedAt is the schema descriptor for updated_at field.
	requestDescUpdatedAt := requestMixinFields0[1].Descriptor()
	// request.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	request.DefaultUpdatedAt = requestDescUpdatedAt.Default.(func() time.Time)
	// request.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	request.UpdateDefaultUpdatedAt = requestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requestDescRequestType is the schema descriptor for request_type field.
	requestDescRequestType := requestFields[1].Descriptor()
	// request.DefaultRequestType holds the default value on creation for the request_type field.
	request.DefaultRequestType = requestDescRequestType.Default.(string)
	// request.RequestTypeValidator is a validator for the "request_type" field. It is called by the builders before save.
	request.RequestTypeValidator = requestDescRequestType.Validators[0].(func(string) error)
	// requestDescTitle is the schema descriptor for title field.
	requestDescTitle := requestFields[3].Descriptor()
	// request.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	request.TitleValidator = requestDescTitle.Validators[0].(func(string) error)
	// requestDescBody is the schema descriptor for body field.
	requestDescBody := requestFields[4].Descriptor()
	// request.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	request.BodyValidator = requestDescBody.Validators[0].(func(string) error)
	requesteventMixin := schema.RequestEvent{}.Mixin()
	requesteventMixinFields0 := requesteventMixin[0].Fields()
	_ = requesteventMixinFields0
	requesteventFields := schema.RequestEvent{}.Fields()
	_ = requesteventFields
	// requesteventDescCreatedAt is the schema descriptor for created_at field.
	requesteventDescCreatedAt := requesteventMixinFields0[0].Descriptor()
	// requestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestevent.DefaultCreatedAt = requesteventDescCreatedAt.Default.(func() time.Time)
	// requesteventDescEventType is the schema descriptor for event_type field.
	requesteventDescEventType := requesteventFields[1].Descriptor()
	// requestevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	requestevent.EventTypeValidator = requesteventDescEventType.Validators[0].(func(string) error)
	requestwatcherMixin := schema.RequestWatcher{}.Mixin()
	requestwatcherMixinFields0 := requestwatcherMixin[0].Fields()
	_ = requestwatcherMixinFields0
	requestwatcherFields := schema.RequestWatcher{}.Fields()
	_ = requestwatcherFields
	// requestwatcherDescCreatedAt is the schema descriptor for created_at field.
	requestwatcherDescCreatedAt := requestwatcherMixinFields0[0].Descriptor()
	// requestwatcher.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestwatcher.DefaultCreatedAt = requestwatcherDescCreatedAt.Default.(func() time.Time)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields0[0].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescStepKey is the schema descriptor for step_key field.
	taskDescStepKey := taskFields[2].Descriptor()
	// task.StepKeyValidator is a validator for the "step_key" field. It is called by the builders before save.
	task.StepKeyValidator = taskDescStepKey.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[2].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	workflowvariantMixin := schema.WorkflowVariant{}.Mixin()
	workflowvariantMixinFields0 := workflowvariantMixin[0].Fields()
	_ = workflowvariantMixinFields0
	workflowvariantFields := schema.WorkflowVariant{}.Fields()
	_ = workflowvariantFields
	// workflowvariantDescCreatedAt is the schema descriptor for created_at field.
	workflowvariantDescCreatedAt := workflowvariantMixinFields0[0].Descriptor()
	// workflowvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowvariant.DefaultCreatedAt = workflowvariantDescCreatedAt.Default.(func() time.Time)
	// workflowvariantDescUpdatedAt is the schema descriptor for updated_at field.
	workflowvariantDescUpdatedAt := workflowvariantMixinFields0[1].Descriptor()
	// workflowvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowvariant.DefaultUpdatedAt = workflowvariantDescUpdatedAt.Default.(func() time.Time)
	// workflowvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowvariant.UpdateDefaultUpdatedAt = workflowvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowvariantDescWorkflowKey is the schema descriptor for workflow_key field.
	workflowvariantDescWorkflowKey := workflowvariantFields[0].Descriptor()
	// workflowvariant.WorkflowKeyValidator is a validator for the "workflow_key" field. It is called by the builders before save.
	workflowvariant.WorkflowKeyValidator = workflowvariantDescWorkflowKey.Validators[0].(func(string) error)
	// workflowvariantDescRequestType is the schema descriptor for request_type field.
	workflowvariantDescRequestType := workflowvariantFields[1].Descriptor()
	// workflowvariant.RequestTypeValidator is a validator for the "request_type" field. It is called by the builders before save.
	workflowvariant.RequestTypeValidator = workflowvariantDescRequestType.Validators[0].(func(string) error)
	// workflowvariantDescName is the schema descriptor for name field.
	workflowvariantDescName := workflowvariantFields[2].Descriptor()
	// workflowvariant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflowvariant.NameValidator = workflowvariantDescName.Validators[0].(func(string) error)
	// workflowvariantDescCategory is the schema descriptor for category field.
	workflowvariantDescCategory := workflowvariantFields[3].Descriptor()
	// workflowvariant.DefaultCategory holds the default value on creation for the category field.
	workflowvariant.DefaultCategory = workflowvariantDescCategory.Default.(string)
	// workflowvariantDescEnabled is the schema descriptor for enabled field.
	workflowvariantDescEnabled := workflowvariantFields[6].Descriptor()
	// workflowvariant.DefaultEnabled holds the default value on creation for the enabled field.
	workflowvariant.DefaultEnabled = workflowvariantDescEnabled.Default.(bool)
	// workflowvariantDescIsDefault is the schema descriptor for is_default field.
	workflowvariantDescIsDefault := workflowvariantFields[7].Descriptor()
	// workflowvariant.DefaultIsDefault holds the default value on creation for the is_default field.
	workflowvariant.DefaultIsDefault = workflowvariantDescIsDefault.Default.(bool)
	workflowvariantstepMixin := schema.WorkflowVariantStep{}.Mixin()
	workflowvariantstepMixinFields0 := workflowvariantstepMixin[0].Fields()
	_ = workflowvariantstepMixinFields0
	workflowvariantstepFields := schema.WorkflowVariantStep{}.Fields()
	_ = workflowvariantstepFields
	// workflowvariantstepDescCreatedAt is the schema descriptor for created_at field.
	workflowvariantstepDescCreatedAt := workflowvariantstepMixinFields0[0].Descriptor()
	// workflowvariantstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowvariantstep.DefaultCreatedAt = workflowvariantstepDescCreatedAt.Default.(func() time.Time)
	// workflowvariantstepDescWorkflowKey is the schema descriptor for workflow_key field.
	workflowvariantstepDescWorkflowKey := workflowvariantstepFields[0].Descriptor()
	// workflowvariantstep.WorkflowKeyValidator is a validator for the "workflow_key" field. It is called by the builders before save.
	workflowvariantstep.WorkflowKeyValidator = workflowvariantstepDescWorkflowKey.Validators[0].(func(string) error)
	// workflowvariantstepDescStepOrder is the schema descriptor for step_order field.
	workflowvariantstepDescStepOrder := workflowvariantstepFields[1].Descriptor()
	// workflowvariantstep.StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	workflowvariantstep.StepOrderValidator = workflowvariantstepDescStepOrder.Validators[0].(func(int) error)
	// workflowvariantstepDescStepKey is the schema descriptor for step_key field.
	workflowvariantstepDescStepKey := workflowvariantstepFields[2].Descriptor()
	// workflowvariantstep.StepKeyValidator is a validator for the "step_key" field. It is called by the builders before save.
	workflowvariantstep.StepKeyValidator = workflowvariantstepDescStepKey.Validators[0].(func(string) error)
	// workflowvariantstepDescAssigneeKind is the schema descriptor for assignee_kind field.
	workflowvariantstepDescAssigneeKind := workflowvariantstepFields[3].Descriptor()
	// workflowvariantstep.AssigneeKindValidator is a validator for the "assignee_kind" field. It is called by the builders before save.
	workflowvariantstep.AssigneeKindValidator = workflowvariantstepDescAssigneeKind.Validators[0].(func(string) error)
}
