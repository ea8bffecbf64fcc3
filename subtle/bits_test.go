package subtle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name   string
		side   Side
		length int
		bits   string
		want   string
	}{
		{"left", Left, 8, "1111", "00001111"},
		{"right", Right, 8, "1111", "11110000"},
		{"exact", Left, 4, "1010", "1010"},
		{"empty", Right, 3, "", "000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Pad(tc.side, tc.length, tc.bits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPad_Overflow(t *testing.T) {
	_, err := Pad(Left, 2, "111")
	require.ErrorIs(t, err, ErrPaddingOverflow)
}

func TestPadMod(t *testing.T) {
	tests := []struct {
		side Side
		mod  int
		bits string
		want string
	}{
		{Left, 4, "1111", "1111"},
		{Left, 8, "1111", "00001111"},
		{Left, 5, "123456", "0000123456"},
		{Right, 3, "1", "100"},
		{Right, 5, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.side.String()+"_"+tc.bits, func(t *testing.T) {
			got, err := PadMod(tc.side, tc.mod, tc.bits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPadMod_Properties(t *testing.T) {
	for n := 0; n <= 20; n++ {
		bits := strings.Repeat("1", n)
		for mod := 1; mod <= 9; mod++ {
			for _, side := range []Side{Left, Right} {
				got, err := PadMod(side, mod, bits)
				require.NoError(t, err)
				assert.Zero(t, len(got)%mod, "len %d mod %d", len(got), mod)
				assert.GreaterOrEqual(t, len(got), n)
				assert.Less(t, len(got)-n, mod)
			}
		}
	}
}

func TestPadMod_InvalidModulus(t *testing.T) {
	_, err := PadMod(Left, 0, "1")
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestGroupsOf(t *testing.T) {
	groups, err := GroupsOf(4, "12345678")
	require.NoError(t, err)
	assert.Equal(t, []string{"1234", "5678"}, groups)

	groups, err = GroupsOf(3, "")
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupsOf_Properties(t *testing.T) {
	for n := 0; n <= 24; n++ {
		s := strings.Repeat("01", n)[:n]
		for size := 1; size <= 8; size++ {
			groups, err := GroupsOf(size, s)
			if n%size != 0 {
				require.ErrorIs(t, err, ErrUngroupableLength)
				assert.Nil(t, groups)
				continue
			}
			require.NoError(t, err)
			for _, g := range groups {
				assert.Len(t, g, size)
			}
			assert.Equal(t, s, strings.Join(groups, ""))
		}
	}
}

func TestGroupsOf_InvalidSize(t *testing.T) {
	_, err := GroupsOf(0, "1010")
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "Side(7)", Side(7).String())
}
