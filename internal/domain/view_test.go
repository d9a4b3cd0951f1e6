package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		start      Selection
		apply      func(Selection) Selection
		wantActive bool
		wantIndex  int
	}{
		{
			name:       "activate from nothing",
			start:      NoSelection(),
			apply:      func(s Selection) Selection { return s.Activate(2) },
			wantActive: true,
			wantIndex:  2,
		},
		{
			name:       "activating the same item toggles it closed",
			start:      Selected(2),
			apply:      func(s Selection) Selection { return s.Activate(2) },
			wantActive: false,
		},
		{
			name:       "activating another item moves directly",
			start:      Selected(2),
			apply:      func(s Selection) Selection { return s.Activate(3) },
			wantActive: true,
			wantIndex:  3,
		},
		{
			name:       "dismiss clears",
			start:      Selected(1),
			apply:      Selection.Dismiss,
			wantActive: false,
		},
		{
			name:       "dismiss on nothing stays empty",
			start:      NoSelection(),
			apply:      Selection.Dismiss,
			wantActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.apply(tt.start)

			idx, active := got.Index()
			assert.Equal(t, tt.wantActive, active)

			if tt.wantActive {
				assert.Equal(t, tt.wantIndex, idx)
				require.NotNil(t, got.IndexPtr())
				assert.Equal(t, tt.wantIndex, *got.IndexPtr())
			} else {
				assert.Nil(t, got.IndexPtr())
			}
		})
	}
}

func TestSelection_ZeroValueIsNoSelection(t *testing.T) {
	var s Selection

	assert.False(t, s.Active())
	assert.Equal(t, NoSelection(), s)
}

func TestViewState_Defaults(t *testing.T) {
	v := NewViewState(KindJob)

	assert.Equal(t, KindJob, v.Kind)
	assert.Equal(t, CategoryAll, v.Filter.Category)
	assert.Empty(t, v.Filter.Query)
	assert.False(t, v.Selection.Active())
}

func TestViewState_Activate(t *testing.T) {
	v := NewViewState(KindJob)

	v, err := v.Activate(1, 3)
	require.NoError(t, err)
	assert.Equal(t, Selected(1), v.Selection)

	v, err = v.Activate(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Selected(2), v.Selection)

	v, err = v.Activate(2, 3)
	require.NoError(t, err)
	assert.False(t, v.Selection.Active())

	_, err = v.Activate(3, 3)
	assert.True(t, IsValidation(err))

	_, err = v.Activate(-1, 3)
	assert.True(t, IsValidation(err))

	_, err = v.Activate(0, 0)
	assert.True(t, IsValidation(err))
}

func TestViewState_FilterChangesClearSelection(t *testing.T) {
	v, err := NewViewState(KindJob).Activate(0, 2)
	require.NoError(t, err)

	same := v.SetCategory(CategoryAll)
	assert.True(t, same.Selection.Active(), "re-selecting the current category keeps the panel open")

	changed := v.SetCategory("frontend")
	assert.False(t, changed.Selection.Active())
	assert.Equal(t, "frontend", changed.Filter.Category)

	queried := v.SetQuery("acme")
	assert.False(t, queried.Selection.Active())
	assert.Equal(t, "acme", queried.Filter.Query)

	reset := changed.SetCategory("")
	assert.Equal(t, CategoryAll, reset.Filter.Category)
}

func TestViewState_Visible(t *testing.T) {
	v := NewViewState(KindPost).SetCategory("web").SetQuery("orbit")

	assert.Equal(t, []string{"4"}, ids(v.Visible(sampleItems())))
}

func TestViewState_DismissKeepsFilter(t *testing.T) {
	v := NewViewState(KindJob).SetQuery("go")
	v, err := v.Activate(0, 1)
	require.NoError(t, err)

	v = v.Dismiss()

	assert.False(t, v.Selection.Active())
	assert.Equal(t, "go", v.Filter.Query)
}
