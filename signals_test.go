package cellz

import "testing"

// TestSignalsInitialized verifies all signals are properly initialized.
// This file tests declaration-only code in signals.go.
func TestSignalsInitialized(t *testing.T) {
	signals := []struct {
		name   string
		signal any
	}{
		{"GroupExpandFailed", SignalGroupExpandFailed},
		{"ChainBuilt", SignalChainBuilt},
		{"BuildFailed", SignalBuildFailed},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("Signal %s is nil", s.name)
		}
	}
}

// TestFieldKeysInitialized verifies all field keys are properly initialized.
func TestFieldKeysInitialized(t *testing.T) {
	fields := []struct {
		name string
		key  any
	}{
		{"Record", FieldRecord},
		{"Field", FieldField},
		{"Annotation", FieldAnnotation},
		{"Direction", FieldDirection},
		{"Error", FieldError},
		{"Timestamp", FieldTimestamp},
		{"Steps", FieldSteps},
		{"Skipped", FieldSkipped},
		{"Duration", FieldDuration},
	}

	for _, f := range fields {
		if f.key == nil {
			t.Errorf("Field key %s is nil", f.name)
		}
	}
}
