package teachta

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestUnresolvableAccessorError_Message(t *testing.T) {
	err := &UnresolvableAccessorError{
		Accessor: "Items",
		Receiver: reflect.TypeOf(&Container{}),
		Reason:   "no matching field or global binding",
	}
	msg := err.Error()
	if !strings.Contains(msg, `"Items"`) {
		t.Errorf("message missing accessor: %s", msg)
	}
	if !strings.Contains(msg, "Container") {
		t.Errorf("message missing receiver type: %s", msg)
	}
	if !strings.Contains(msg, "no matching field") {
		t.Errorf("message missing reason: %s", msg)
	}
}

func TestUnresolvableAccessorError_NilReceiver(t *testing.T) {
	err := &UnresolvableAccessorError{Accessor: "Items", Reason: "receiver is nil"}
	if !strings.Contains(err.Error(), "nil") {
		t.Errorf("message should mention nil receiver: %s", err.Error())
	}
}

func TestMethodNotFoundError_Message(t *testing.T) {
	err := &MethodNotFoundError{
		Method: "Push",
		Target: reflect.TypeOf(&ItemList{}),
	}
	msg := err.Error()
	if !strings.Contains(msg, `"Push"`) {
		t.Errorf("message missing method: %s", msg)
	}
	if !strings.Contains(msg, "ItemList") {
		t.Errorf("message missing target type: %s", msg)
	}
}

func TestMethodNotFoundError_NilTarget(t *testing.T) {
	err := &MethodNotFoundError{Method: "Push"}
	if !strings.Contains(err.Error(), "nil target") {
		t.Errorf("message should mention nil target: %s", err.Error())
	}
}

func TestInvalidDelegationError_Message(t *testing.T) {
	err := &InvalidDelegationError{Reason: "accessor cannot be empty"}
	want := "invalid delegation: accessor cannot be empty"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestReceiverMismatchError_Message(t *testing.T) {
	err := &ReceiverMismatchError{
		Want: reflect.TypeOf(&Container{}),
		Got:  reflect.TypeOf(42),
	}
	msg := err.Error()
	if !strings.Contains(msg, "Container") || !strings.Contains(msg, "int") {
		t.Errorf("message missing types: %s", msg)
	}

	nilErr := &ReceiverMismatchError{Want: reflect.TypeOf(&Container{})}
	if !strings.Contains(nilErr.Error(), "nil") {
		t.Errorf("message should mention nil receiver: %s", nilErr.Error())
	}
}

func TestArgumentCountError_Message(t *testing.T) {
	err := &ArgumentCountError{
		Method: "Push",
		Target: reflect.TypeOf(&ItemList{}),
		Want:   1,
		Got:    0,
	}
	if !strings.Contains(err.Error(), "takes 1 arguments, got 0") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	variadic := &ArgumentCountError{
		Method:   "PushAll",
		Target:   reflect.TypeOf(&ItemList{}),
		Want:     1,
		Got:      0,
		Variadic: true,
	}
	if !strings.Contains(variadic.Error(), "at least 1") {
		t.Errorf("variadic message should say at least: %s", variadic.Error())
	}
}

func TestArgumentTypeError_Message(t *testing.T) {
	err := &ArgumentTypeError{
		Method:   "Each",
		Position: 0,
		Want:     reflect.TypeOf(func(interface{}) {}),
		Got:      reflect.TypeOf("s"),
	}
	if !strings.Contains(err.Error(), "argument 0") {
		t.Errorf("message missing position: %s", err.Error())
	}

	nilArg := &ArgumentTypeError{Method: "Push", Want: reflect.TypeOf(0)}
	if !strings.Contains(nilArg.Error(), "untyped nil") {
		t.Errorf("message should mention untyped nil: %s", nilArg.Error())
	}
}

func TestManifestError_Message(t *testing.T) {
	cause := errors.New("boom")

	withPath := &ManifestError{Path: "delegations.toml", Err: cause}
	if !strings.Contains(withPath.Error(), "delegations.toml") {
		t.Errorf("message missing path: %s", withPath.Error())
	}

	withoutPath := &ManifestError{Err: cause}
	if !strings.Contains(withoutPath.Error(), "boom") {
		t.Errorf("message missing cause: %s", withoutPath.Error())
	}
}

func TestManifestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ManifestError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ManifestError should unwrap to its cause")
	}
}
