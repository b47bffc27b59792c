package filters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefinitions_MatchDomainsAndDefaults(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 5)

	def := Definition(Brightness)
	require.Equal(t, "brightness", def.Key)
	require.Equal(t, "Brightness", def.Label)
	require.Equal(t, Domain{Min: 0, Max: 200}, def.Domain)
	require.Equal(t, 100, def.Default)
	require.Equal(t, 1, def.Step)

	require.Equal(t, Domain{Min: 0, Max: 20}, Definition(Blur).Domain)
	require.Equal(t, Domain{Min: 0, Max: 100}, Definition(Sepia).Domain)

	for i, d := range defs {
		require.Equal(t, Parameters()[i], d.Param)
		require.True(t, d.Domain.Contains(d.Default))
	}
}

func TestParamsForTab(t *testing.T) {
	var adj []string
	for _, d := range ParamsForTab(TabAdjustments) {
		adj = append(adj, d.Key)
	}
	require.Equal(t, []string{"brightness", "contrast", "saturation"}, adj)

	var fil []string
	for _, d := range ParamsForTab(TabFilters) {
		fil = append(fil, d.Key)
	}
	require.Equal(t, []string{"blur", "sepia"}, fil)

	require.Equal(t, "Adjustments", TabAdjustments.Label())
	require.Equal(t, "palette", TabFilters.Icon())
}

func TestExpressions(t *testing.T) {
	require.Equal(t, "/api/filters/blur", UpdateActionURL(Blur))
	require.Equal(t, "@post('/api/filters/sepia',{filterSignals:{include:/^sepia$/}})", SliderInputExpr(Sepia))
	require.Equal(t, "$contrast", SliderReadoutExpr(Contrast))
	require.Contains(t, ResetExpr(), ResetActionURL)
}
