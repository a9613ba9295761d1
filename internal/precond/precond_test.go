package precond

import "testing"

func TestRequireTruePasses(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Require(true, ...) panicked: %v", r)
		}
	}()
	Require(true, "this should never fire")
}

func TestRequireFalsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Require(false, ...) did not panic")
		}
	}()
	Require(false, "boom: %d", 42)
}
