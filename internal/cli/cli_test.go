package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shop = `cells:
  - {id: c, vertex: 1, value: "<b>Customer</b>"}
  - {id: o, vertex: 1, value: Order}
  - {id: e, edge: 1, source: c, target: o, style: "endArrow=classic;", value: "has (N)"}
`

// syncBuffer is a bytes.Buffer safe for the watch goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// setup isolates the test from the user's config and environment and
// writes the input document.
func setup(t *testing.T, doc string) (input, out string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	input = filepath.Join(dir, "shop.yaml")
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o644))
	return input, filepath.Join(dir, "out")
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var o, e bytes.Buffer
	code = Execute(context.Background(), args, &o, &e)
	return code, o.String(), e.String()
}

func TestExecute_Generate(t *testing.T) {
	input, out := setup(t, shop)

	code, stdout, _ := run(t, input, out)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "Generated 2 classes into "+out+"\n", stdout)

	buf, err := os.ReadFile(filepath.Join(out, "Customer.java"))
	require.NoError(t, err)
	assert.Equal(t, "import java.util.*; \n\npublic class Customer {\n  private List<Order> orders = new ArrayList<>();\n}\n", string(buf))
	assert.FileExists(t, filepath.Join(out, "Order.java"))
}

func TestExecute_Flags(t *testing.T) {
	input, out := setup(t, shop)

	code, _, stderr := run(t, input, out, "--lang", "go", "--package", "shop", "--header", "Source: shop.yaml", "--workers", "2")
	require.Equal(t, ExitOK, code, stderr)
	buf, err := os.ReadFile(filepath.Join(out, "Customer.go"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "// Source: shop.yaml")
	assert.Contains(t, string(buf), "package shop")
	assert.Regexp(t, `Orders\s+\[\]\*Order`, string(buf))
}

func TestExecute_Template(t *testing.T) {
	input, out := setup(t, shop)
	tmpl := filepath.Join(t.TempDir(), "class.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte("class {{ .Class.Name }}\n"), 0o644))

	code, _, stderr := run(t, input, out, "--lang", "template", "--template", tmpl, "--ext", ".txt")
	require.Equal(t, ExitOK, code, stderr)
	buf, err := os.ReadFile(filepath.Join(out, "Order.txt"))
	require.NoError(t, err)
	assert.Equal(t, "class Order\n", string(buf))

	code, _, stderr = run(t, input, out, "--lang", "template")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "template file")
}

func TestExecute_Environment(t *testing.T) {
	input, out := setup(t, shop)
	t.Setenv("DRAWGEN_LANGUAGE", "go")

	code, _, stderr := run(t, input, out)
	require.Equal(t, ExitOK, code, stderr)
	assert.FileExists(t, filepath.Join(out, "Order.go"))
}

func TestExecute_ConfigFile(t *testing.T) {
	input, out := setup(t, shop)
	cfg := filepath.Join(t.TempDir(), "drawgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("language: go\npluralizer: inflect\n"), 0o644))

	code, _, stderr := run(t, input, out, "--config", cfg)
	require.Equal(t, ExitOK, code, stderr)
	assert.FileExists(t, filepath.Join(out, "Order.go"))

	code, _, stderr = run(t, input, out, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "read config")
}

func TestExecute_Usage(t *testing.T) {
	setup(t, shop)
	for _, args := range [][]string{nil, {"only.drawio"}, {"a", "b", "c"}} {
		code, stdout, _ := run(t, args...)
		assert.Equal(t, ExitUsage, code)
		assert.Equal(t, usageLine+"\n", stdout)
	}
}

func TestExecute_ValidationFailure(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want string
	}{
		"dangling": {
			doc: `cells:
  - {id: c, vertex: 1, value: Customer}
  - {id: e, edge: 1, source: c, target: gone, value: "has (1)"}
`,
			want: `Arrow must connect two things: edgeId=e src=Customer target=gone (unresolved: "gone")`,
		},
		"missing label": {
			doc: `cells:
  - {id: c, vertex: 1, value: Customer}
  - {id: o, vertex: 1, value: Order}
  - {id: e, edge: 1, source: c, target: o}
`,
			want: "Missing association label on edgeId=e src=Customer target=Order",
		},
		"circular": {
			doc: `cells:
  - {id: a, vertex: 1, value: A}
  - {id: e, edge: 1, source: a, target: a, style: "endArrow=block;endFill=0;"}
`,
			want: "Specialization must not be circular: A -> A",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input, out := setup(t, tt.doc)
			code, stdout, _ := run(t, input, out)
			assert.Equal(t, ExitFailure, code)
			assert.Equal(t, tt.want+"\n", stdout)
			assert.NoDirExists(t, out)
		})
	}
}

func TestExecute_MalformedInput(t *testing.T) {
	input, out := setup(t, "cells: [")
	code, stdout, stderr := run(t, input, out)
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: drawgen: cannot read yaml document")
}

func TestGraphCmd(t *testing.T) {
	input, _ := setup(t, shop)
	code, stdout, stderr := run(t, "graph", input)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "class: Customer")
	assert.Contains(t, stdout, "kind: ASSOCIATION")
	assert.Contains(t, stdout, "label: has (N)")
}

func TestConfigCmd(t *testing.T) {
	setup(t, shop)

	code, stdout, stderr := run(t, "config", "show", "--lang", "go", "--workers", "3")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "language: go")
	assert.Contains(t, stdout, "workers: 3")
	assert.Contains(t, stderr, "No configuration file found")

	path := filepath.Join(t.TempDir(), "conf", "config.yaml")
	code, stdout, stderr = run(t, "config", "init", "--config", path)
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, "Created "+path+"\n", stdout)
	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "language: java")

	code, _, stderr = run(t, "config", "init", "--config", path)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stderr, "already exists")

	code, stdout, stderr = run(t, "config", "show", "--config", path)
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stdout, "language: java")
	assert.Contains(t, stderr, "Configuration file: "+path)
}

func TestVersionCmd(t *testing.T) {
	setup(t, shop)
	code, stdout, _ := run(t, "version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "drawgen "+Version+"\n", stdout)
}

func TestExecute_Watch(t *testing.T) {
	input, out := setup(t, shop)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan int, 1)
	go func() {
		done <- Execute(ctx, []string{input, out, "--watch"}, &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Count(stdout.String(), "Generated") == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Rewrite until the watcher, started after the first run, sees a change.
	grown := shop + "  - {id: i, vertex: 1, value: Invoice}\n"
	require.Eventually(t, func() bool {
		_ = os.WriteFile(input, []byte(grown), 0o644)
		return strings.Contains(stdout.String(), "Generated 3 classes")
	}, 5*time.Second, 300*time.Millisecond)
	assert.FileExists(t, filepath.Join(out, "Invoice.java"))

	bad := shop + "  - {id: x, edge: 1, source: c, target: nowhere, value: \"has (1)\"}\n"
	require.Eventually(t, func() bool {
		_ = os.WriteFile(input, []byte(bad), 0o644)
		return strings.Contains(stdout.String(), "Arrow must connect two things")
	}, 5*time.Second, 300*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
