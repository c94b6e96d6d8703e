package registry

import (
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/config"
)

type constPolicy string

func (p constPolicy) ResultAsset(int) string { return string(p) }

type testVariant struct{ id string }

func (v testVariant) ID() string    { return v.id }
func (v testVariant) Title() string { return "Test " + v.id }
func (v testVariant) Policy(config.ResultConfig) ResultPolicy {
	return constPolicy("Fixed")
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Variant { return testVariant{id: "zz-test"} })

	if !Exists("zz-test") {
		t.Fatal("Exists(zz-test) = false, expected true")
	}

	v, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := v.Policy(config.ResultConfig{}).ResultAsset(99); got != "Fixed" {
		t.Errorf("ResultAsset() = %q, expected Fixed", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-test" {
			found = info.Title == "Test zz-test"
		}
	}
	if !found {
		t.Error("List() missing zz-test with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-variant"); err == nil {
		t.Error("Create(unknown) expected error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Variant { return testVariant{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register(duplicate) expected panic")
		}
	}()
	Register("zz-dup", func() Variant { return testVariant{id: "zz-dup"} })
}
