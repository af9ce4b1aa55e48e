package openapi

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/model"
)

const petstore = `
openapi: 3.0.3
info:
  title: Accounts
  version: 1.0.0
paths: {}
components:
  schemas:
    Account:
      type: object
      required: [email, age]
      properties:
        email:
          type: string
          format: email
          description: Where we send receipts.
          x-formgen:
            placeholder: you@example.com
        age:
          type: integer
          minimum: 18
          maximum: 120
        displayName:
          type: string
          minLength: 2
          maxLength: 40
          pattern: "^[a-z ]+$"
        plan:
          type: string
          enum: [free, pro]
          default: free
        tags:
          type: array
          items:
            type: string
            enum: [alpha, beta]
        address:
          type: object
          required: [city]
          properties:
            city:
              type: string
              x-formgen:
                label: Town
            zip:
              type: string
`

func TestLoadSchemas(t *testing.T) {
	schemas, err := LoadSchemas(context.Background(), []byte(petstore), "Account")
	if err != nil {
		t.Fatalf("load schemas: %v", err)
	}

	want := []model.Schema{
		{Name: "address.city", Type: model.FieldTypeString, Required: true, Label: "Town", UIHints: map[string]string{"label": "Town"}},
		{Name: "address.zip", Type: model.FieldTypeString, Label: "Zip"},
		{
			Name:     "age",
			Type:     model.FieldTypeInteger,
			Required: true,
			Label:    "Age",
			Validations: []model.ValidationRule{
				{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "18"}},
				{Kind: model.ValidationRuleMax, Params: map[string]string{"value": "120"}},
			},
		},
		{
			Name:  "displayName",
			Type:  model.FieldTypeString,
			Label: "Display Name",
			Validations: []model.ValidationRule{
				{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "2"}},
				{Kind: model.ValidationRuleMaxLength, Params: map[string]string{"value": "40"}},
				{Kind: model.ValidationRulePattern, Params: map[string]string{"pattern": "^[a-z ]+$"}},
			},
		},
		{
			Name:        "email",
			Type:        model.FieldTypeString,
			Format:      "email",
			Required:    true,
			Label:       "Email",
			Description: "Where we send receipts.",
			UIHints:     map[string]string{"placeholder": "you@example.com", "inputType": "email"},
		},
		{Name: "plan", Type: model.FieldTypeString, Label: "Plan", Default: "free", Enum: []any{"free", "pro"}},
		{Name: "tags", Type: model.FieldTypeArray, Label: "Tags", Enum: []any{"alpha", "beta"}},
	}
	if diff := cmp.Diff(want, schemas); diff != "" {
		t.Fatalf("schemas mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSchemasNestedObjectsKept(t *testing.T) {
	schemas, err := LoadSchemas(context.Background(), []byte(petstore), "Account", WithNestedObjects(false))
	if err != nil {
		t.Fatalf("load schemas: %v", err)
	}
	if schemas[0].Name != "address" || schemas[0].Type != model.FieldTypeObject {
		t.Fatalf("expected address object schema first, got %+v", schemas[0])
	}
}

func TestLoadSchemasUnknownComponent(t *testing.T) {
	_, err := LoadSchemas(context.Background(), []byte(petstore), "Missing")
	if !errors.Is(err, ErrComponentNotFound) {
		t.Fatalf("expected ErrComponentNotFound, got %v", err)
	}
}

func TestLoadRejectsEmptyAndCancelled(t *testing.T) {
	if _, err := Load(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, []byte(petstore)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestComponentNames(t *testing.T) {
	doc, err := Load(context.Background(), []byte(petstore))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"Account"}, ComponentNames(doc)); diff != "" {
		t.Fatalf("component names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"first_name":  "First Name",
		"displayName": "Display Name",
		"address2":    "Address 2",
		"":            "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}
