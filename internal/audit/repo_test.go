package audit

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemRepo_RecentNewestFirst(t *testing.T) {
	r := NewMemRepo(3, nil)
	for i := 1; i <= 5; i++ {
		require.NoError(t, r.Record(context.Background(), NewEntry(ActionOrderStatus, fmt.Sprintf("o%d", i), "Shipped", "")))
	}

	got, err := r.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 3, "ring keeps the last entries only")
	assert.Equal(t, "o5", got[0].Target)
	assert.Equal(t, "o3", got[2].Target)

	got, err = r.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o5", got[0].Target)
}

func TestMemRepo_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	r := NewMemRepo(0, log)
	require.NoError(t, r.Record(context.Background(), NewEntry(ActionProductRemove, "p1", "Product Removed", "rid-1")))
	assert.Contains(t, buf.String(), `"action":"product.remove"`)
	assert.Contains(t, buf.String(), `"rid":"rid-1"`)
}

func TestNewEntryAndLimit(t *testing.T) {
	e := NewEntry(ActionProductAdd, "", "Shirt", "rid")
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.At.IsZero())
	assert.Equal(t, "UTC", e.At.Location().String())

	assert.Equal(t, 20, clampLimit(0))
	assert.Equal(t, 20, clampLimit(500))
	assert.Equal(t, 7, clampLimit(7))
}
