package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Customer", "Customer"},
		{"tags", "<div><b>Customer</b></div>", "Customer"},
		{"nbsp", "Order&nbsp;Item", "Order Item"},
		{"surrounding space", "  Order \n", "Order"},
		{"only markup", "<br>&nbsp;", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"order item", "OrderItem"},
		{"<b>Foo</b>&nbsp;Bar", "FooBar"},
		{"customer", "Customer"},
		{"orderItem", "OrderItem"},
		{"HTTP server", "HTTPServer"},
		{"line-item_2", "LineItem2"},
		{"  spaced   out  ", "SpacedOut"},
		{"2fa token", "2faToken"},
		{"café bar", "CafBar"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassName(tt.in))
		})
	}

	t.Run("never empty", func(t *testing.T) {
		for _, in := range []string{"", "   ", "!!!", "<i></i>", "&nbsp;", "-_-", "\t\n"} {
			got := ClassName(in)
			assert.NotEmpty(t, got, "input %q", in)
			assert.Equal(t, UnnamedClass, got, "input %q", in)
		}
	})
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "order", LowerFirst("Order"))
	assert.Equal(t, "orderItem", LowerFirst("OrderItem"))
	assert.Equal(t, "x", LowerFirst("X"))
	assert.Equal(t, "already", LowerFirst("already"))
	assert.Equal(t, DefaultField, LowerFirst(""))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "orders", Pluralize("order"))
	assert.Equal(t, "orders", Pluralize("orders"))
	assert.Equal(t, "STATUS", Pluralize("STATUS"))
	assert.Equal(t, "categorys", Pluralize("category"))
	assert.Equal(t, "items", Pluralize("item"))
	assert.Equal(t, "tags", Pluralize("  tag "))
	assert.Equal(t, DefaultCollection, Pluralize(""))
	assert.Equal(t, DefaultCollection, Pluralize("   "))
}
