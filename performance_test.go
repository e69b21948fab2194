package teachta

import (
	"fmt"
	"testing"
)

// Benchmark types
type BenchSink struct {
	count int
}

func (s *BenchSink) Record(v int) int {
	s.count += v
	return s.count
}

func (s *BenchSink) CallMethod(name string, args ...interface{}) ([]interface{}, error) {
	if name == "record" {
		return []interface{}{s.Record(args[0].(int))}, nil
	}
	return nil, fmt.Errorf("no method %s", name)
}

type BenchOwner struct {
	Sink *BenchSink
}

// BenchmarkInvoke_FieldAccessor measures the full resolve-then-forward
// path through a literal field accessor and direct dispatch.
func BenchmarkInvoke_FieldAccessor(b *testing.B) {
	delegator := ForType(&BenchOwner{})
	if _, err := delegator.DefineDelegator("Sink", "Record"); err != nil {
		b.Fatal(err)
	}
	owner := &BenchOwner{Sink: &BenchSink{}}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := delegator.Invoke(owner, "Record", 1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInvoke_DynamicDispatch measures forwarding through the generic
// call-by-name primitive.
func BenchmarkInvoke_DynamicDispatch(b *testing.B) {
	delegator := ForType(&BenchOwner{})
	if _, err := delegator.DefineDelegator("Sink", "record"); err != nil {
		b.Fatal(err)
	}
	owner := &BenchOwner{Sink: &BenchSink{}}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := delegator.Invoke(owner, "record", 1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDefineDelegator measures definition-time cost, including the
// accessor probe.
func BenchmarkDefineDelegator(b *testing.B) {
	delegator := ForType(&BenchOwner{})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := delegator.DefineDelegator("Sink", "Record"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBoundMethod measures calls through a pre-bound Method value.
func BenchmarkBoundMethod(b *testing.B) {
	delegator := For(&BenchOwner{Sink: &BenchSink{}})
	if _, err := delegator.DefineDelegator("Sink", "Record"); err != nil {
		b.Fatal(err)
	}
	record, err := delegator.Method("Record")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := record(1); err != nil {
			b.Fatal(err)
		}
	}
}
