package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	t.Run("Valor gravado é legível antes da expiração", func(t *testing.T) {
		c := New(time.Minute)

		c.Set("metrics", 42)

		value, ok := c.Get("metrics")
		assert.True(t, ok)
		assert.Equal(t, 42, value)
	})

	t.Run("Chave desconhecida retorna false", func(t *testing.T) {
		c := New(time.Minute)

		value, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("Valor expira após o TTL", func(t *testing.T) {
		c := New(10 * time.Millisecond)

		c.Set("metrics", 42)
		time.Sleep(20 * time.Millisecond)

		_, ok := c.Get("metrics")
		assert.False(t, ok)
	})

	t.Run("Invalidate remove a chave antes da expiração", func(t *testing.T) {
		c := New(time.Minute)

		c.Set("metrics", 42)
		c.Invalidate("metrics")

		_, ok := c.Get("metrics")
		assert.False(t, ok)
	})

	t.Run("Set sobrescreve o valor e renova a expiração", func(t *testing.T) {
		c := New(time.Minute)

		c.Set("metrics", 1)
		c.Set("metrics", 2)

		value, ok := c.Get("metrics")
		assert.True(t, ok)
		assert.Equal(t, 2, value)
	})
}
