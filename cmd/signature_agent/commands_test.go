package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/signature-customizer/internal/config"
	"github.com/jonathan/signature-customizer/internal/rendering"
	"github.com/jonathan/signature-customizer/internal/signature"
	"github.com/jonathan/signature-customizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	withConfig(t, config.Defaults())
	out := filepath.Join(t.TempDir(), "nested", "default.json")

	require.NoError(t, writeDefault(out, nil))

	doc := readDocument(t, out)
	assert.Equal(t, signature.SchemaVersion, doc.SchemaVersion)
	assert.Equal(t, types.CreateDefault(), doc.Signature)
	assert.NotEmpty(t, doc.Checksum)
}

func TestWriteDefault_Stdout(t *testing.T) {
	withConfig(t, config.Defaults())
	var stdout bytes.Buffer

	require.NoError(t, writeDefault("", &stdout))

	assert.Contains(t, stdout.String(), `"schemaVersion": 2`)
	assert.Contains(t, stdout.String(), `"family": "inter"`)
}

func TestWriteDefault_OutputDir(t *testing.T) {
	dir := t.TempDir()
	c := config.Defaults()
	c.OutputDir = dir
	withConfig(t, c)

	require.NoError(t, writeDefault("sig.json", nil))

	_, err := os.Stat(filepath.Join(dir, "sig.json"))
	assert.NoError(t, err)
}

func TestWriteDefault_VerboseKeepsStdoutJSON(t *testing.T) {
	c := config.Defaults()
	c.Verbose = true
	withConfig(t, c)

	var summaries bytes.Buffer
	withPrinter(t, &summaries)

	var stdout bytes.Buffer
	require.NoError(t, writeDefault("", &stdout))

	assert.True(t, json.Valid(stdout.Bytes()), "stdout: %s", stdout.String())
	assert.Contains(t, summaries.String(), "SIGNATURE")
}

func TestValidateFiles_Clean(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()
	first := writeSignature(t, dir, "a.json", types.CreateDefault())
	second := writeFile(t, dir, "legacy.json", `{"data": {"fullName": "Ada"}, "options": {"image": {"shadow": true, "shadowSize": "md"}}}`)
	out := filepath.Join(dir, "findings.json")

	require.NoError(t, validateFiles(context.Background(), []string{first, second}, out, nil))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	var reports []FileReport
	require.NoError(t, json.Unmarshal(content, &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, first, reports[0].Path)
	assert.Equal(t, second, reports[1].Path)
	assert.Empty(t, reports[0].Findings)
	assert.Empty(t, reports[1].Findings)
	assert.Contains(t, string(content), `"findings": []`)
}

func TestValidateFiles_FindingsFail(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()

	bad := types.CreateDefault()
	bad.Options.Font.Family = "comic-sans"
	bad.Options.Gap.Title = 500
	good := writeSignature(t, dir, "good.json", types.CreateDefault())
	badPath := writeSignature(t, dir, "bad.json", bad)

	var stdout bytes.Buffer
	err := validateFiles(context.Background(), []string{good, badPath}, "", &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found 2 finding(s)")

	var reports []FileReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Empty(t, reports[0].Findings)
	assert.Len(t, reports[1].Findings, 2)
}

func TestValidateFiles_MalformedInput(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `[1, 2, 3]`)

	err := validateFiles(context.Background(), []string{bad}, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, signature.ErrMalformedInput)
}

func TestValidateFiles_MissingFile(t *testing.T) {
	withConfig(t, config.Defaults())

	err := validateFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.json")}, "", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestNormalizeFile(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", `{
		"data": {"fullName": "  Ada  ", "socials": [{"title": "x", "url": ""}, {"title": "gh", "url": "https://github.com/ada"}]},
		"options": {"gap": {"title": -5}, "size": {"title": 0}, "color": {"title": "#ABC"}}
	}`)
	out := filepath.Join(dir, "out.json")

	require.NoError(t, normalizeFile(in, out, nil))

	doc := readDocument(t, out)
	assert.Equal(t, "Ada", doc.Signature.Data.FullName)
	assert.Len(t, doc.Signature.Data.Socials, 1)
	assert.Equal(t, 0.0, doc.Signature.Options.Gap.Title)
	assert.Equal(t, types.MinSize, doc.Signature.Options.Size.Title)
	assert.Equal(t, "#abc", doc.Signature.Options.Color.Title)
}

func TestNormalizeFile_StrictRejectsRemainingFindings(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.json", `{"data": {}, "options": {"font": {"family": "comic-sans"}}}`)
	out := filepath.Join(dir, "out.json")

	lenient := config.Defaults()
	withConfig(t, lenient)
	require.NoError(t, normalizeFile(in, out, nil), "findings alone do not block normalize")

	strict := config.Defaults()
	strict.Strict = true
	withConfig(t, strict)
	strictOut := filepath.Join(dir, "strict.json")
	err := normalizeFile(in, strictOut, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "options.font.family")

	_, statErr := os.Stat(strictOut)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNormalizeFile_InvalidUTF8ReadsBack(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()

	sig := types.CreateDefault()
	sig.Data.FullName = "Ada \xff Lovelace"
	in := writeSignature(t, dir, "in.json", sig)
	out := filepath.Join(dir, "out.json")

	require.NoError(t, normalizeFile(in, out, nil))
	require.NoError(t, validateFiles(context.Background(), []string{out}, filepath.Join(dir, "findings.json"), nil))

	doc := readDocument(t, out)
	assert.Equal(t, "Ada \uFFFD Lovelace", doc.Signature.Data.FullName)
}

func TestMigrateFile(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()
	in := writeFile(t, dir, "legacy.json", `{"schemaVersion": 1, "signature": {"data": {"company": "Acme"}, "options": {"image": {"shadow": true, "shadowSize": "lg"}, "gap": {"title": 900}}}}`)
	out := filepath.Join(dir, "current.json")

	require.NoError(t, migrateFile(in, out, nil))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "shadowSize")

	doc := readDocument(t, out)
	assert.Equal(t, "Acme", doc.Signature.Data.Company)
	assert.Equal(t, 10.0, doc.Signature.Options.Image.ShadowIntensity)
	assert.Equal(t, 900.0, doc.Signature.Options.Gap.Title, "migrate does not clamp")
}

func TestMigrateFile_Malformed(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()
	in := writeFile(t, dir, "bad.json", `{"schemaVersion": 9, "signature": {"data": {}, "options": {}}}`)

	err := migrateFile(in, filepath.Join(dir, "out.json"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, signature.ErrMalformedInput)

	var loadErr *signature.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolveFile(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()

	sig := types.CreateDefault()
	sig.Data.Image = "https://cdn.example.com/me.png"
	sig.Data.Socials = []types.SocialLink{{Title: "gh", URL: "https://github.com/ada"}}
	sig.Options.Font.Family = "comic-sans"
	in := writeSignature(t, dir, "sig.json", sig)

	var stdout bytes.Buffer
	require.NoError(t, resolveFile(in, "", &stdout))

	var style rendering.Style
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &style))
	assert.Equal(t, types.FontInter, style.FontFamily)
	require.Len(t, style.Substitutions, 1)
	assert.Equal(t, "options.font.family", style.Substitutions[0].Path)
	require.NotNil(t, style.Image)
	assert.Equal(t, "50%", style.Image.BorderRadius)
	require.Len(t, style.Socials, 1)
	assert.Equal(t, types.SocialGitHub, style.Socials[0].Type)
}

func TestPrintSchema(t *testing.T) {
	for _, name := range []string{"signature", "document"} {
		var stdout bytes.Buffer
		require.NoError(t, printSchema(name, &stdout))
		assert.True(t, json.Valid(stdout.Bytes()), name)
	}

	err := printSchema("stylesheet", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestSetup_ConfigFileAndFlags(t *testing.T) {
	withConfig(t, config.Defaults())
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{"log_level": "warn", "output_dir": "`+filepath.ToSlash(dir)+`"}`)

	configPath, logLevel = path, "debug"
	t.Cleanup(func() { configPath, logLevel = "", "" })

	require.NoError(t, setup(rootCmd, nil))
	assert.Equal(t, "debug", cfg.LogLevel, "flags win over the config file")
	assert.Equal(t, config.FormatConsole, cfg.LogFormat)
	assert.Equal(t, filepath.ToSlash(dir), cfg.OutputDir)
}

func TestSetup_PrinterWritesToErrorStream(t *testing.T) {
	withConfig(t, config.Defaults())
	withPrinter(t, &bytes.Buffer{})

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	require.NoError(t, setup(rootCmd, nil))
	printer.PrintFindings("sig.json", nil)

	assert.Contains(t, stderr.String(), "NO FINDINGS")
}

func TestSetup_InvalidConfig(t *testing.T) {
	withConfig(t, config.Defaults())

	logFormat = "xml"
	t.Cleanup(func() { logFormat = "" })

	err := setup(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"default", "validate", "normalize", "migrate", "resolve", "schema"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
