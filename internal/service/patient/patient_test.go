package patient

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/cardioai/internal/events"
	"github.com/Alijeyrad/cardioai/internal/fields"
	"github.com/Alijeyrad/cardioai/internal/registry"
)

func newService(t *testing.T, dir string) Service {
	t.Helper()
	cfg, err := fields.New([]fields.Field{
		{Name: "surname", Default: ""},
		{Name: "name", Default: ""},
		{Name: "middle_name", Default: ""},
		{Name: "hypertension", Default: int64(0)},
	})
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC) }
	return New(registry.New(cfg), events.NewPublisher(nil), dir, clock)
}

func TestAddAndList(t *testing.T) {
	svc := newService(t, t.TempDir())
	ctx := context.Background()

	res, err := svc.Add(ctx, map[string]any{"surname": "A", "name": "B", "middle_name": "C"})
	require.NoError(t, err)
	assert.Equal(t, []registry.Name{{Surname: "A", Name: "B", MiddleName: "C"}}, res.Patients)

	_, err = svc.Add(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	assert.Len(t, svc.List(ctx), 1)
	assert.Len(t, svc.Fields(ctx), 4)
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploading")
	svc := newService(t, dir)
	ctx := context.Background()

	_, err := svc.Export(ctx)
	assert.ErrorIs(t, err, ErrNoPatients)

	_, err = svc.Add(ctx, map[string]any{"surname": "A"})
	require.NoError(t, err)

	res, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "01_02_2024_03_04_05.csv"), res.File)
	assert.Equal(t, 1, res.Rows)

	_, err = os.Stat(res.File)
	assert.NoError(t, err)
}

func TestWriteSpreadsheet(t *testing.T) {
	svc := newService(t, t.TempDir())
	ctx := context.Background()

	var buf bytes.Buffer
	assert.ErrorIs(t, svc.WriteSpreadsheet(ctx, &buf), ErrNoPatients)

	_, err := svc.Add(ctx, map[string]any{"surname": "A"})
	require.NoError(t, err)
	require.NoError(t, svc.WriteSpreadsheet(ctx, &buf))
	assert.NotZero(t, buf.Len())
}
