package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IIPisarenko/ITOG/internal/adapter/export"
	"github.com/IIPisarenko/ITOG/internal/core/analytics"
	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of cmd and its children back to its default,
// since the command tree is shared between test runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	root := RootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	closeLog()

	return stdout.String(), stderr.String(), err
}

// setupStore runs the test in an empty directory and returns a --db flag
// pointing at a fresh database file there.
func setupStore(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	chdir(t, dir)
	return "--db=" + filepath.Join(dir, "orders.db")
}

// restoreTerminalCheck puts the real terminal check back when the test ends.
func restoreTerminalCheck(t *testing.T) {
	t.Helper()

	saved := stdinIsTerminal
	t.Cleanup(func() { stdinIsTerminal = saved })
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, stderr, err := executeCommand(t, args...)
	require.NoError(t, err, "args %v, stderr: %s", args, stderr)
	return out
}

func TestVersionCommand(t *testing.T) {
	out := mustRun(t, "version")
	assert.Contains(t, out, "orderdesk version")
}

func TestClientsAddAndList(t *testing.T) {
	db := setupStore(t)

	out := mustRun(t, db, "clients", "add", "Иван Петров", "ivan@example.ru", "0123456789")
	assert.Contains(t, out, "Client 'Иван Петров' added")
	mustRun(t, db, "clients", "add", "Anna", "anna@example.com", "9876543210")

	out = mustRun(t, db, "clients", "list")
	assert.Contains(t, out, "Имя")
	assert.Contains(t, out, "Номер телефона")
	assert.Contains(t, out, "ivan@example.ru")
	assert.Less(t, strings.Index(out, "Иван Петров"), strings.Index(out, "Anna"))

	out = mustRun(t, db, "clients", "list", "--query", "name|like|A%", "-o", "json")
	var clients []domain.Client
	require.NoError(t, json.Unmarshal([]byte(out), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "anna@example.com", clients[0].Email)
}

func TestClientsAddRejectsInvalidInput(t *testing.T) {
	db := setupStore(t)

	_, _, err := executeCommand(t, db, "clients", "add", "Ann", "ann@example.com", "12345")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, _, err = executeCommand(t, db, "clients", "add", "R2D2", "r2@example.com", "0123456789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	out := mustRun(t, db, "clients", "list")
	assert.Contains(t, out, "No records found.")
}

func TestClientsAddDuplicateEmail(t *testing.T) {
	db := setupStore(t)

	mustRun(t, db, "clients", "add", "Anna", "anna@example.com", "0123456789")
	_, _, err := executeCommand(t, db, "clients", "add", "Boris", "anna@example.com", "0123456789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.ErrorIs(t, err, domain.ErrConstraint)
	assert.Equal(t, ExitConstraint, exitCode(err))
}

func TestClientsDelete(t *testing.T) {
	db := setupStore(t)

	mustRun(t, db, "clients", "add", "Anna", "a1@example.com", "0123456789")
	mustRun(t, db, "clients", "add", "Anna", "a2@example.com", "0123456789")

	restoreTerminalCheck(t)
	stdinIsTerminal = func() bool { return false }
	_, _, err := executeCommand(t, db, "clients", "delete", "Anna")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	out := mustRun(t, db, "clients", "delete", "Anna", "--yes")
	assert.Contains(t, out, "Deleted 2 client(s)")

	out = mustRun(t, db, "clients", "delete", "Anna", "--yes")
	assert.Contains(t, out, "No client named 'Anna'")
}

func TestClientsDeleteConfirmation(t *testing.T) {
	db := setupStore(t)
	mustRun(t, db, "clients", "add", "Anna", "anna@example.com", "0123456789")

	restoreTerminalCheck(t)
	stdinIsTerminal = func() bool { return true }

	rootCmd.SetIn(strings.NewReader("no\n"))
	out := mustRun(t, db, "clients", "delete", "Anna")
	assert.Contains(t, out, "Cancelled")

	rootCmd.SetIn(strings.NewReader("yes\n"))
	out = mustRun(t, db, "clients", "delete", "Anna")
	assert.Contains(t, out, "Are you sure")
	assert.Contains(t, out, "Deleted 1 client(s)")
}

func TestClientsListRejectsBadQuery(t *testing.T) {
	db := setupStore(t)

	_, _, err := executeCommand(t, db, "clients", "list", "--query", "name|between|a")
	assert.True(t, domain.IsValidation(err))

	_, _, err = executeCommand(t, db, "clients", "list", "--query", "password|x")
	assert.True(t, domain.IsValidation(err))
}

func TestProductsAddAndList(t *testing.T) {
	db := setupStore(t)

	out := mustRun(t, db, "products", "add", "Чайник", "1499.9")
	assert.Contains(t, out, "1499.90")

	_, _, err := executeCommand(t, db, "products", "add", "Кружка", "cheap")
	assert.True(t, domain.IsValidation(err))

	out = mustRun(t, db, "products", "list")
	assert.Contains(t, out, "Название")
	assert.Contains(t, out, "Чайник")
	assert.NotContains(t, out, "Кружка")
}

func TestOrdersAddAndList(t *testing.T) {
	db := setupStore(t)

	mustRun(t, db, "clients", "add", "Anna", "anna@example.com", "0123456789")
	mustRun(t, db, "products", "add", "Kettle", "10")

	out := mustRun(t, db, "orders", "add", "Anna", "Kettle", "--quantity", "2", "--date", "2025-11-03")
	assert.Contains(t, out, "placed")

	_, _, err := executeCommand(t, db, "orders", "add", "Nobody", "Kettle")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mustRun(t, db, "orders", "add-ids", "99", "98")

	out = mustRun(t, db, "orders", "list", "--query", "client_name|Anna")
	assert.Contains(t, out, "2025-11-03 00:00:00")
	assert.Contains(t, out, "Kettle")
	assert.NotContains(t, out, "Nobody")

	out = mustRun(t, db, "orders", "list", "-o", "json")
	var orders []domain.OrderDetail
	require.NoError(t, json.Unmarshal([]byte(out), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, 2, orders[0].Quantity)
	assert.Equal(t, int64(99), orders[1].ClientID)
	assert.Empty(t, orders[1].ClientName)
}

func TestAnalyticsCommands(t *testing.T) {
	db := setupStore(t)

	for _, c := range [][3]string{
		{"A", "a@example.com", "0000000001"},
		{"B", "b@example.com", "0000000002"},
		{"C", "c@example.com", "0000000003"},
		{"D", "d@example.com", "0000000004"},
	} {
		mustRun(t, db, "clients", "add", c[0], c[1], c[2])
	}
	mustRun(t, db, "products", "add", "X", "1")
	mustRun(t, db, "products", "add", "Y", "1")

	place := func(client, product, date string, times int) {
		for i := 0; i < times; i++ {
			mustRun(t, db, "orders", "add", client, product, "--date", date)
		}
	}
	place("A", "X", "2025-11-02", 3)
	place("B", "X", "2025-11-01", 1)
	place("D", "Y", "2025-11-02", 5)

	out := mustRun(t, db, "analytics", "top-clients", "-o", "json")
	var top []domain.ClientOrderCount
	require.NoError(t, json.Unmarshal([]byte(out), &top))
	assert.Equal(t, []domain.ClientOrderCount{
		{Name: "D", Orders: 5, Units: 5},
		{Name: "A", Orders: 3, Units: 3},
		{Name: "B", Orders: 1, Units: 1},
		{Name: "C", Orders: 0, Units: 0},
	}, top)

	out = mustRun(t, db, "analytics", "top-clients", "--limit", "2")
	assert.Contains(t, out, "Top 2 clients")
	assert.Less(t, strings.Index(out, "D "), strings.Index(out, "A "))
	assert.NotContains(t, out, "B ")

	out = mustRun(t, db, "analytics", "trends")
	assert.Less(t, strings.Index(out, "2025-11-01"), strings.Index(out, "2025-11-02"))
	assert.Contains(t, out, "Total: 9")

	out = mustRun(t, db, "analytics", "trends", "--from", "2025-11-02", "-o", "json")
	var points []analytics.TrendPoint
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	require.Len(t, points, 1)
	assert.Equal(t, 8, points[0].Orders)

	out = mustRun(t, db, "analytics", "network", "--format", "dot")
	assert.Equal(t, "graph clients {\n\t\"A\";\n\t\"B\";\n\t\"A\" -- \"B\";\n}\n", out)

	_, _, err := executeCommand(t, db, "analytics", "network", "--format", "svg")
	assert.True(t, domain.IsValidation(err))
}

func TestExportCommands(t *testing.T) {
	db := setupStore(t)
	dir := t.TempDir()

	mustRun(t, db, "clients", "add", "Иван", "ivan@example.ru", "0123456789")
	mustRun(t, db, "clients", "add", "Tom", "tom@example.com", "9876543210")

	want := []export.Record{
		{Name: "Иван", Email: "ivan@example.ru", Phone: "0123456789"},
		{Name: "Tom", Email: "tom@example.com", Phone: "9876543210"},
	}

	csvPath := filepath.Join(dir, "clients.csv")
	out := mustRun(t, db, "export", "csv", csvPath)
	assert.Contains(t, out, "Exported 2 client(s)")

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	got, err := export.ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	jsonPath := filepath.Join(dir, "clients.json")
	mustRun(t, db, "export", "json", jsonPath)
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"name\": \"Иван\"")
	got, err = export.ReadJSON(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	nestedPath := filepath.Join(dir, "reports", "2025", "clients.json")
	mustRun(t, db, "export", "json", nestedPath)
	data, err = os.ReadFile(nestedPath)
	require.NoError(t, err)
	got, err = export.ReadJSON(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, _, err = executeCommand(t, db, "export", "xml", filepath.Join(dir, "clients.xml"))
	assert.True(t, domain.IsValidation(err))
}

func TestStoreConnectionFailureAbortsBeforeOutput(t *testing.T) {
	chdir(t, t.TempDir())
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "orders.db")

	out, _, err := executeCommand(t, "--db", missing, "clients", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConnection)
	assert.Empty(t, out)
}

func TestInvalidOutputFlag(t *testing.T) {
	db := setupStore(t)

	_, _, err := executeCommand(t, db, "-o", "xml", "clients", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "validation", err: &domain.ValidationError{Field: "phone", Reason: "too short"}, want: ExitValidation},
		{name: "not found", err: &domain.NotFoundError{Entity: "client", Key: "Anna"}, want: ExitNotFound},
		{name: "constraint", err: &domain.StoreError{Op: "insert", Kind: domain.ErrConstraint, Err: errors.New("UNIQUE constraint failed")}, want: ExitConstraint},
		{name: "connection", err: fmt.Errorf("failed to initialize database: %w", &domain.StoreError{Op: "open", Kind: domain.ErrConnection, Err: errors.New("unable to open")}), want: ExitConnection},
		{name: "other", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
