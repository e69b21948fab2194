package teachta

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/toutaio/toutago-teachta-method-delegator/registry"
)

// plainIdentifier matches names that can appear as a normal call token:
// letters, digits, and underscores, not starting with a digit.
var plainIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// directlyDispatchable reports whether a method name can be invoked through
// normal reflection method lookup: a plain identifier that is exported.
// Operator-like names and unexported names must go through the generic
// call-by-name primitive instead.
func directlyDispatchable(name string) bool {
	if !plainIdentifier.MatchString(name) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// callTarget invokes spec.Method on the resolved target, forwarding args
// verbatim. Direct dispatch looks the method up on the target's public
// method set; if the method is absent there but the target carries the
// dynamic dispatch primitive, a diagnostic is emitted and the call
// succeeds through CallMethod. Dynamic dispatch goes straight to
// CallMethod without a diagnostic.
func callTarget(cfg *config, owner string, spec *registry.Spec, target interface{}, args []interface{}) ([]interface{}, error) {
	if target == nil {
		return nil, &MethodNotFoundError{Method: spec.Method}
	}

	if spec.Direct {
		m := reflect.ValueOf(target).MethodByName(spec.Method)
		if m.IsValid() {
			return reflectCall(m, spec, target, args)
		}
		if caller, ok := target.(MethodCaller); ok {
			if cfg.warnings {
				cfg.logger.Warn().
					Str("owner", owner).
					Str("alias", spec.Alias).
					Str("defined_at", spec.DefinedAt).
					Str("target", fmt.Sprintf("%T", target)).
					Msgf("%s#%s at %s forwards to %T#%s, which is not a public method; using CallMethod",
						owner, spec.Alias, spec.DefinedAt, target, spec.Method)
			}
			return caller.CallMethod(spec.Method, args...)
		}
		return nil, &MethodNotFoundError{Method: spec.Method, Target: reflect.TypeOf(target)}
	}

	caller, ok := target.(MethodCaller)
	if !ok {
		return nil, &MethodNotFoundError{Method: spec.Method, Target: reflect.TypeOf(target)}
	}
	return caller.CallMethod(spec.Method, args...)
}

// reflectCall forwards args to a bound method value. The argument shape is
// preserved exactly: positional arguments map one to one, a variadic tail
// is expanded, and function-valued arguments (callbacks) pass through like
// any other value. Panics raised by the target propagate to the caller.
func reflectCall(m reflect.Value, spec *registry.Spec, target interface{}, args []interface{}) ([]interface{}, error) {
	mt := m.Type()

	if mt.IsVariadic() {
		if len(args) < mt.NumIn()-1 {
			return nil, &ArgumentCountError{
				Method:   spec.Method,
				Target:   reflect.TypeOf(target),
				Want:     mt.NumIn() - 1,
				Got:      len(args),
				Variadic: true,
			}
		}
	} else if len(args) != mt.NumIn() {
		return nil, &ArgumentCountError{
			Method: spec.Method,
			Target: reflect.TypeOf(target),
			Want:   mt.NumIn(),
			Got:    len(args),
		}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var paramType reflect.Type
		if mt.IsVariadic() && i >= mt.NumIn()-1 {
			paramType = mt.In(mt.NumIn() - 1).Elem()
		} else {
			paramType = mt.In(i)
		}

		value, err := coerceArg(arg, paramType, spec, i)
		if err != nil {
			return nil, err
		}
		in[i] = value
	}

	return unpackResults(m.Call(in))
}

// coerceArg adapts one forwarded argument to the target parameter type.
// Assignable values pass through untouched; numeric values convert across
// numeric kinds. Anything else is a type error.
func coerceArg(arg interface{}, paramType reflect.Type, spec *registry.Spec, position int) (reflect.Value, error) {
	if arg == nil {
		switch paramType.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.Zero(paramType), nil
		}
		return reflect.Value{}, &ArgumentTypeError{
			Method:   spec.Method,
			Position: position,
			Want:     paramType,
		}
	}

	value := reflect.ValueOf(arg)
	if value.Type().AssignableTo(paramType) {
		return value, nil
	}
	if isNumericKind(value.Kind()) && isNumericKind(paramType.Kind()) && value.Type().ConvertibleTo(paramType) {
		return value.Convert(paramType), nil
	}

	return reflect.Value{}, &ArgumentTypeError{
		Method:   spec.Method,
		Position: position,
		Want:     paramType,
		Got:      value.Type(),
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// unpackResults converts the target's return values. A trailing error
// return surfaces as the forwarder's error, unmodified; the remaining
// values are returned in order.
func unpackResults(out []reflect.Value) ([]interface{}, error) {
	if len(out) == 0 {
		return nil, nil
	}

	last := out[len(out)-1]
	if last.Kind() == reflect.Interface && last.Type().Implements(errorType) {
		var err error
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		results := make([]interface{}, 0, len(out)-1)
		for _, v := range out[:len(out)-1] {
			results = append(results, v.Interface())
		}
		return results, err
	}

	results := make([]interface{}, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results, nil
}
