package db

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcepts_Id(t *testing.T) {
	c := newConcepts()
	var calls int

	id, err := c.Id("us-gaap_Assets", func() (uint32, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), id)
	assert.Equal(t, 1, calls)

	id, err = c.Id("us-gaap_Assets", func() (uint32, error) {
		calls++
		return 0, errors.New("unexpected call")
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), id)
	assert.Equal(t, 1, calls)
}

func TestConcepts_Id_error(t *testing.T) {
	c := newConcepts()
	testErr := errors.New("expected error")

	_, err := c.Id("us-gaap_Assets", func() (uint32, error) {
		return 0, testErr
	})
	require.ErrorIs(t, err, testErr)

	// failed creation is not cached
	id, err := c.Id("us-gaap_Assets", func() (uint32, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, uint32(3), id)
}

func TestConcepts_Prime(t *testing.T) {
	c := newConcepts()
	c.Prime(map[string]uint32{"us-gaap_Assets": 1, "us-gaap_Liabilities": 2})

	id, err := c.Id("us-gaap_Liabilities", func() (uint32, error) {
		return 0, errors.New("unexpected call")
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), id)
}

func TestConcepts_Id_concurrent(t *testing.T) {
	c := newConcepts()
	var calls atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := c.Id("us-gaap_Assets", func() (uint32, error) {
				calls.Add(1)
				return 7, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, uint32(7), id)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
