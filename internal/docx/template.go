package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"alquilerdocs/internal/docmodel"
)

// ---------------------------------------------------------------------------
// Template substitution
// ---------------------------------------------------------------------------

// placeholderRe matches {name} tokens inside the XML parts.
var placeholderRe = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Resaving a template in Word can split a placeholder's characters across
// adjacent runs ("{tenant</w:t>...<w:t>Name}"). runSplitRe finds such
// brace pairs with markup between them; stripping the tags must yield an
// intact token before the span is rejoined.
var (
	runSplitRe  = regexp.MustCompile(`\{[^{}]*<[^{}]*\}`)
	xmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	intactToken = regexp.MustCompile(`^\{[A-Za-z][A-Za-z0-9_]*\}$`)
)

// xmlEscaper escapes substituted values for embedding in XML text runs.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// GenerateContract renders the contract template at templatePath and
// returns the filename and document bytes. A missing or unreadable
// template is a hard failure: without it no DOCX can be produced.
func GenerateContract(templatePath string, c *docmodel.ContractData, now time.Time) (string, []byte, error) {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return "", nil, fmt.Errorf("contract template %s: %w", templatePath, err)
	}

	out, err := RenderTemplate(template, Values(c, now))
	if err != nil {
		return "", nil, err
	}

	name := fmt.Sprintf("Contrato_%s_%s_%d.docx",
		sanitize(c.RoomName, "Habitacion"),
		sanitize(c.TenantName, "Inquilino"),
		now.UnixMilli())
	return name, out, nil
}

// RenderTemplate substitutes {placeholder} tokens in the template's body,
// header and footer parts. Placeholders with no value are collected and
// reported together in a single error, mirroring how the templating
// engines used for these documents aggregate their sub-errors.
func RenderTemplate(template []byte, values map[string]string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("contract template is not a DOCX archive: %w", err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	missing := map[string]bool{}

	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("reading template part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading template part %s: %w", f.Name, err)
		}

		if isTextPart(f.Name) {
			data = substitute(joinSplitTokens(data), values, missing)
		}

		out, err := w.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("writing template part %s: %w", f.Name, err)
		}
		if _, err := out.Write(data); err != nil {
			return nil, fmt.Errorf("writing template part %s: %w", f.Name, err)
		}
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("error en la plantilla: sin valor para %s", strings.Join(names, ", "))
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	return buf.Bytes(), nil
}

// isTextPart reports whether a zip entry may contain placeholders: the
// document body plus any header or footer part.
func isTextPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	base := path.Base(name)
	return path.Dir(name) == "word" && path.Ext(base) == ".xml" &&
		(strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer"))
}

// joinSplitTokens rejoins placeholders whose braces Word separated into
// adjacent runs, so they substitute (or get reported as missing) like
// intact ones. The run markup between the braces is balanced, so dropping
// it keeps the part well-formed.
func joinSplitTokens(data []byte) []byte {
	return runSplitRe.ReplaceAllFunc(data, func(span []byte) []byte {
		token := xmlTagRe.ReplaceAll(span, nil)
		if intactToken.Match(token) {
			return token
		}
		return span
	})
}

// substitute replaces {name} tokens, escaping values for XML and turning
// newlines in values into DOCX line breaks.
func substitute(data []byte, values map[string]string, missing map[string]bool) []byte {
	return placeholderRe.ReplaceAllFunc(data, func(token []byte) []byte {
		name := string(token[1 : len(token)-1])
		value, ok := values[name]
		if !ok {
			missing[name] = true
			return token
		}
		escaped := xmlEscaper.Replace(value)
		escaped = strings.ReplaceAll(escaped, "\n",
			`</w:t><w:br/><w:t xml:space="preserve">`)
		return []byte(escaped)
	})
}

// sanitize turns a name into a filename segment, falling back when blank.
func sanitize(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return strings.Join(strings.Fields(s), "_")
}
