package templates

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/filterlab/pkg/filters"
)

func TestConfiguratorPage_RendersPreviewSlidersAndDump(t *testing.T) {
	cfg, err := filters.Update(filters.DefaultConfig(), "blur", 15)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ConfiguratorPage(cfg, "https://example.com/a.jpg?x=1&y=2").Render(context.Background(), &buf))
	html := buf.String()

	require.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	require.Contains(t, html, "<title>Image Configurator</title>")
	require.Contains(t, html, `id="preview-image"`)
	require.Contains(t, html, `src="https://example.com/a.jpg?x=1&amp;y=2"`)
	require.Contains(t, html, "filter: brightness(100%) contrast(100%) saturate(100%) blur(1.5px) sepia(0%)")
	require.Contains(t, html, `id="settings-dump"`)
	require.Contains(t, html, "&#34;blur&#34;: 15")

	require.Contains(t, html, `id="slider-brightness" class="range" type="range" min="0" max="200" step="1"`)
	require.Contains(t, html, `id="slider-blur" class="range" type="range" min="0" max="20" step="1"`)
	require.Contains(t, html, `id="slider-sepia" class="range" type="range" min="0" max="100" step="1"`)
	require.Equal(t, 5, strings.Count(html, `type="range"`))
	require.Equal(t, 2, strings.Count(html, `role="tabpanel"`))
}

func TestSignals_CarryConfigAndTab(t *testing.T) {
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(Signals(filters.Config{Brightness: 7, Sepia: 3})), &got))
	require.Equal(t, float64(7), got["brightness"])
	require.Equal(t, float64(3), got["sepia"])
	require.Equal(t, float64(0), got["blur"])
	require.Equal(t, "adjustments", got["_tab"])
}

func TestFragments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PreviewImage(filters.DefaultConfig(), "/img.jpg").Render(context.Background(), &buf))
	img := buf.String()
	require.True(t, strings.HasPrefix(img, `<img id="preview-image" class="preview"`))
	require.Contains(t, img, `src="/img.jpg"`)
	require.Contains(t, img, `style="filter: brightness(100%) contrast(100%) saturate(100%) blur(0px) sepia(0%)"`)

	buf.Reset()
	require.NoError(t, SettingsDump(filters.DefaultConfig()).Render(context.Background(), &buf))
	require.True(t, strings.HasPrefix(buf.String(), `<pre id="settings-dump"`))
	require.Contains(t, buf.String(), "&#34;brightness&#34;: 100")
}

func TestPreviewImage_EscapesImageURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PreviewImage(filters.DefaultConfig(), `/img.jpg"><script>x</script>`).Render(context.Background(), &buf))
	require.NotContains(t, buf.String(), "<script>")
	require.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestLayout_RendersChildren(t *testing.T) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(context.Background(), SettingsDump(filters.DefaultConfig()))
	require.NoError(t, Layout("a < b").Render(ctx, &buf))
	html := buf.String()
	require.Contains(t, html, "<title>a &lt; b</title>")
	require.Contains(t, html, `<body><pre id="settings-dump"`)
	require.True(t, strings.HasSuffix(html, "</body></html>"))
}

func TestTabList_BindsActiveClass(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TabList().Render(context.Background(), &buf))
	html := buf.String()
	require.Equal(t, 2, strings.Count(html, `role="tab"`))
	require.Contains(t, html, `data-class:active="$_tab === &#39;adjustments&#39;"`)
	require.Contains(t, html, `data-on:click="$_tab = &#39;filters&#39;"`)
}
