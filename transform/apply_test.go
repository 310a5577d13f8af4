package transform

import "testing"

type refusingTransform struct{}

func (refusingTransform) Name() string                                    { return "refusing" }
func (refusingTransform) Init(src ColorRanges) bool                       { return false }
func (refusingTransform) Meta(planes Planes, src ColorRanges) ColorRanges { return src }
func (refusingTransform) Data(planes Planes)                              {}
func (refusingTransform) InvData(planes Planes)                           {}

func TestApplyRunsDataWhenApplicable(t *testing.T) {
	tr := &fakeTransform{name: "fake"}
	dst, err := Apply(tr, nil, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if dst != nil {
		t.Fatalf("Apply returned %v, want the nil src it was given back via Meta", dst)
	}
}

func TestApplyReturnsErrNotApplicableWhenInitRefuses(t *testing.T) {
	_, err := Apply(refusingTransform{}, nil, nil)
	if err != ErrNotApplicable {
		t.Fatalf("Apply error = %v, want %v", err, ErrNotApplicable)
	}
}
