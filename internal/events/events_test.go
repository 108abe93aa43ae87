package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_DisabledIsNoop(t *testing.T) {
	var nilPub *Publisher
	assert.False(t, nilPub.Enabled())

	p := NewPublisher(nil)
	assert.False(t, p.Enabled())

	// must not panic without a connection
	p.PatientAdded(1, 101, time.Now())
	p.ExportCreated("uploading/x.csv", 1, time.Now())
}

func TestDecodeExportCreated(t *testing.T) {
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	data, err := json.Marshal(ExportCreated{ID: "id", Path: "uploading/a.csv", Rows: 2, CreatedAt: at})
	require.NoError(t, err)

	ev, err := DecodeExportCreated(data)
	require.NoError(t, err)
	assert.Equal(t, "uploading/a.csv", ev.Path)
	assert.Equal(t, 2, ev.Rows)
	assert.True(t, at.Equal(ev.CreatedAt))

	_, err = DecodeExportCreated([]byte(`{"rows": 1}`))
	assert.Error(t, err)

	_, err = DecodeExportCreated([]byte(`not json`))
	assert.Error(t, err)
}
