package field_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/element"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

func customComponent() *element.Component {
	return element.NewComponent("Custom", func(element.Props) (*element.Element, error) {
		return element.Intrinsic("div", nil), nil
	})
}

func assertLabel(t *testing.T, r *testsupport.ShallowRenderer, want *element.Component) *element.Element {
	t.Helper()
	label := r.Label()
	if label == nil {
		t.Fatalf("expected label slot")
	}
	if label.Type != want {
		t.Fatalf("label type mismatch: want %s, got %s", want, label.Name())
	}
	return label
}

func assertInput(t *testing.T, r *testsupport.ShallowRenderer, want *element.Component) *element.Element {
	t.Helper()
	input := r.Input()
	if input == nil {
		t.Fatalf("expected input slot")
	}
	if input.Type != want {
		t.Fatalf("input type mismatch: want %s, got %s", want, input.Name())
	}
	return input
}

func assertNoErrorList(t *testing.T, r *testsupport.ShallowRenderer) {
	t.Helper()
	if errorList := r.ErrorList(); errorList != nil {
		t.Fatalf("expected no error list, got %s", errorList.Name())
	}
}

func assertErrorList(t *testing.T, r *testsupport.ShallowRenderer, want *element.Component) *element.Element {
	t.Helper()
	errorList := r.ErrorList()
	if errorList == nil {
		t.Fatalf("expected error list slot")
	}
	if errorList.Type != want {
		t.Fatalf("error list type mismatch: want %s, got %s", want, errorList.Name())
	}
	return errorList
}

func TestField_RendersInputWithValue(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	fv := &model.FormValue{Value: "hello"}

	r.Render(field.Props{FormValue: fv})

	input := assertInput(t, r, field.DefaultInput)
	if got := input.Props[element.PropValue]; got != "hello" {
		t.Fatalf("input value mismatch: want hello, got %v", got)
	}
	assertNoErrorList(t, r)
}

func TestField_OnChangeWithEventUpdatesFormValue(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	updates := &testsupport.Recorder{}
	fv := &model.FormValue{Value: "hello", Update: updates.Record}

	r.Render(field.Props{FormValue: fv})

	input := assertInput(t, r, field.DefaultInput)
	onChange := input.Props.ChangeHandler(element.PropOnChange)
	if onChange == nil {
		t.Fatalf("expected onChange handler on input")
	}

	event := field.NewEvent("changed!")
	onChange(event)

	if got := event.PropagationStopped(); got != 1 {
		t.Fatalf("expected stopPropagation once, got %d", got)
	}
	if updates.Count() != 1 {
		t.Fatalf("expected one update, got %d", updates.Count())
	}
	if got := updates.First(); got != "changed!" {
		t.Fatalf("update argument mismatch: want changed!, got %v", got)
	}
}

func TestField_OnChangeWithValueUpdatesFormValue(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	updates := &testsupport.Recorder{}
	fv := &model.FormValue{Value: "hello", Update: updates.Record}

	r.Render(field.Props{FormValue: fv})

	input := assertInput(t, r, field.DefaultInput)
	input.Props.ChangeHandler(element.PropOnChange)("changed!")

	if updates.Count() != 1 {
		t.Fatalf("expected one update, got %d", updates.Count())
	}
	if got := updates.First(); got != "changed!" {
		t.Fatalf("update argument mismatch: want changed!, got %v", got)
	}
}

func TestField_OnChangeWithoutUpdateIsNoop(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	r.Render(field.Props{FormValue: &model.FormValue{}})

	input := assertInput(t, r, field.DefaultInput)
	input.Props.ChangeHandler(element.PropOnChange)(field.NewEvent("x"))
}

func TestField_RendersLabel(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	fv := &model.FormValue{Value: "hello", Schema: &model.Schema{Name: "title"}}

	r.Render(field.Props{FormValue: fv, Label: "Label"})

	label := assertLabel(t, r, field.DefaultLabel)
	if got := label.Props.String(element.PropLabel); got != "Label" {
		t.Fatalf("label text mismatch: want Label, got %q", got)
	}
	if got := field.Schema(label.Props); got != fv.Schema {
		t.Fatalf("expected label to receive the form value schema")
	}
}

func TestField_HidesErrorListWhenNotDirty(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	r.Render(field.Props{FormValue: &model.FormValue{}, Label: "Label"})

	assertNoErrorList(t, r)
	if got := len(r.Output().Children); got != 3 {
		t.Fatalf("expected three child positions, got %d", got)
	}
}

func TestField_RendersErrorListAfterBlur(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	fv := &model.FormValue{}

	r.Render(field.Props{FormValue: fv, Label: "Label"})
	assertNoErrorList(t, r)

	onBlur := r.Output().Props.Handler(element.PropOnBlur)
	if onBlur == nil {
		t.Fatalf("expected onBlur on the wrapper")
	}
	onBlur()

	errorList := assertErrorList(t, r, field.DefaultErrorList)
	if got := field.FormValue(errorList.Props); got != fv {
		t.Fatalf("expected error list to receive the same form value")
	}
	if r.Renders() != 2 {
		t.Fatalf("expected blur to trigger one re-render, got %d renders", r.Renders())
	}
}

func TestField_BlurIsSticky(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	fv := &model.FormValue{}

	r.Render(field.Props{FormValue: fv})
	r.Output().Props.Handler(element.PropOnBlur)()
	r.Output().Props.Handler(element.PropOnBlur)()

	if r.Renders() != 2 {
		t.Fatalf("second blur should not re-render, got %d renders", r.Renders())
	}

	next := &model.FormValue{Value: "other"}
	r.Render(field.Props{FormValue: next})
	errorList := assertErrorList(t, r, field.DefaultErrorList)
	if field.FormValue(errorList.Props) != next {
		t.Fatalf("expected error list to follow the current form value")
	}
	if r.Instance().State() != field.ErrorsShown {
		t.Fatalf("expected shown state, got %s", r.Instance().State())
	}
}

func TestField_RendersErrorListWhenForced(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	fv := &model.FormValue{Params: model.Params{ForceShowErrors: true}}

	r.Render(field.Props{FormValue: fv, Label: "Label"})

	errorList := assertErrorList(t, r, field.DefaultErrorList)
	if field.FormValue(errorList.Props) != fv {
		t.Fatalf("expected error list to receive the same form value")
	}
}

func TestField_ForcedDisplayDoesNotPersist(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)

	r.Render(field.Props{FormValue: &model.FormValue{Params: model.Params{ForceShowErrors: true}}})
	assertErrorList(t, r, field.DefaultErrorList)

	r.Render(field.Props{FormValue: &model.FormValue{}})
	assertNoErrorList(t, r)
	if r.Instance().State() != field.ErrorsHidden {
		t.Fatalf("forced display must not change state, got %s", r.Instance().State())
	}
}

func TestField_VirtualizesSelf(t *testing.T) {
	custom := customComponent()
	r := testsupport.NewShallowRenderer(t)

	out := r.Render(field.Props{FormValue: &model.FormValue{}, Slots: field.Slots{Self: custom}})

	if out == nil || out.Type != custom {
		t.Fatalf("expected self element of custom type, got %s", out.Name())
	}
	if out.Props.Handler(element.PropOnBlur) == nil {
		t.Fatalf("custom self should still receive onBlur")
	}
}

func TestField_DefaultSelfIsDiv(t *testing.T) {
	r := testsupport.NewShallowRenderer(t)
	out := r.Render(field.Props{FormValue: &model.FormValue{}})
	if out.Type != nil || out.Tag != field.DefaultSelfTag {
		t.Fatalf("expected %s wrapper, got %s", field.DefaultSelfTag, out.Name())
	}
}

func TestField_VirtualizesInput(t *testing.T) {
	custom := customComponent()
	r := testsupport.NewShallowRenderer(t)

	r.Render(field.Props{FormValue: &model.FormValue{Value: 3}, Slots: field.Slots{Input: custom}})

	input := assertInput(t, r, custom)
	if input.Props[element.PropValue] != 3 {
		t.Fatalf("expected value forwarded to custom input")
	}
	if input.Props.ChangeHandler(element.PropOnChange) == nil {
		t.Fatalf("expected onChange forwarded to custom input")
	}
}

func TestField_VirtualizesInputViaChild(t *testing.T) {
	custom := customComponent()
	other := customComponent()
	r := testsupport.NewShallowRenderer(t)
	updates := &testsupport.Recorder{}

	r.Render(field.Props{
		FormValue: &model.FormValue{Value: "v", Update: updates.Record},
		Slots:     field.Slots{Input: other},
		Children:  []*element.Element{element.New(custom, element.Props{"x": "1"})},
	})

	input := assertInput(t, r, custom)
	if got := input.Props.String("x"); got != "1" {
		t.Fatalf("expected child prop x=1, got %q", got)
	}
	if input.Props[element.PropValue] != "v" {
		t.Fatalf("expected value merged into child props")
	}
	input.Props.ChangeHandler(element.PropOnChange)("next")
	if updates.First() != "next" {
		t.Fatalf("expected child onChange wired to update")
	}
}

func TestField_ChildElementIsNotMutated(t *testing.T) {
	child := element.New(customComponent(), element.Props{"x": "1"})
	r := testsupport.NewShallowRenderer(t)

	r.Render(field.Props{FormValue: &model.FormValue{Value: "v"}, Children: []*element.Element{child}})

	if _, ok := child.Props[element.PropValue]; ok {
		t.Fatalf("child element props were mutated")
	}
}

func TestField_VirtualizesLabel(t *testing.T) {
	custom := customComponent()
	r := testsupport.NewShallowRenderer(t)
	schema := &model.Schema{Required: true}

	r.Render(field.Props{FormValue: &model.FormValue{Schema: schema}, Label: "Name", Slots: field.Slots{Label: custom}})

	label := assertLabel(t, r, custom)
	if label.Props.String(element.PropLabel) != "Name" || field.Schema(label.Props) != schema {
		t.Fatalf("custom label should keep the label/schema contract")
	}
}

func TestField_VirtualizesErrorList(t *testing.T) {
	custom := customComponent()
	r := testsupport.NewShallowRenderer(t)
	fv := &model.FormValue{Params: model.Params{ForceShowErrors: true}}

	r.Render(field.Props{FormValue: fv, Slots: field.Slots{ErrorList: custom}})

	errorList := assertErrorList(t, r, custom)
	if field.FormValue(errorList.Props) != fv {
		t.Fatalf("custom error list should receive formValue")
	}
}

func TestField_WithDefaultsReplacesBuiltins(t *testing.T) {
	custom := customComponent()
	r := testsupport.NewShallowRenderer(t, field.WithDefaults(field.Slots{Label: custom}))

	r.Render(field.Props{FormValue: &model.FormValue{}})

	assertLabel(t, r, custom)
	assertInput(t, r, field.DefaultInput)
}

func TestField_RejectsMultipleChildren(t *testing.T) {
	f := field.New()
	_, err := f.Render(field.Props{
		FormValue: &model.FormValue{},
		Children: []*element.Element{
			element.Intrinsic("input", nil),
			element.Intrinsic("textarea", nil),
		},
	})
	if !errors.Is(err, field.ErrMultipleChildren) {
		t.Fatalf("expected ErrMultipleChildren, got %v", err)
	}
}

func TestField_RequiresFormValue(t *testing.T) {
	_, err := field.New().Render(field.Props{})
	if !errors.Is(err, field.ErrMissingFormValue) {
		t.Fatalf("expected ErrMissingFormValue, got %v", err)
	}
}
