package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"lakenine-studio/internal/domain/entity"
)

// ---- strategy 1: fenced JSON ----

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// fencedJSON parses fenced JSON blocks (then the brace-bounded remainder
// as a last candidate) into a file tree. Nested objects become nested
// paths unless the object itself is the file content, in which case it
// is pretty-printed.
func fencedJSON(response string) entity.FileSet {
	var candidates []string
	for _, m := range fencedJSONRe.FindAllStringSubmatch(response, -1) {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, cleanJSON(response))

	for _, c := range candidates {
		var root map[string]any
		if err := json.Unmarshal([]byte(c), &root); err != nil {
			continue
		}
		files := entity.FileSet{}
		walkTree("", root, files)
		if len(files) > 0 {
			return files
		}
	}
	return nil
}

// cleanJSON strips markdown fences and trims to the outermost braces.
func cleanJSON(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start >= 0 && end > start {
		response = response[start : end+1]
	}
	return strings.TrimSpace(response)
}

func walkTree(prefix string, node map[string]any, files entity.FileSet) {
	for key, val := range node {
		full := key
		if prefix != "" {
			full = prefix + "/" + key
		}
		switch v := val.(type) {
		case string:
			if isSourcePath(key) {
				files.Set(full, v)
			}
		case map[string]any:
			// A "files" wrapper at the top level is transparent.
			if prefix == "" && key == "files" {
				walkTree("", v, files)
				continue
			}
			if isSourcePath(key) && !hasSourceKeys(v) {
				if b, err := json.MarshalIndent(v, "", "  "); err == nil {
					files.Set(full, string(b))
				}
				continue
			}
			walkTree(full, v, files)
		}
	}
}

func hasSourceKeys(node map[string]any) bool {
	for key, val := range node {
		if isSourcePath(key) {
			return true
		}
		if sub, ok := val.(map[string]any); ok && hasSourceKeys(sub) {
			return true
		}
	}
	return false
}

// ---- strategy 2: regex key/value pairs ----

const pathPattern = `[\w\-./@]+\.(?:jsx?|tsx?|json|html?|css|svg|md)`

var (
	quotedPairRe   = regexp.MustCompile(`"(` + pathPattern + `)"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	backtickPairRe = regexp.MustCompile("\"(" + pathPattern + ")\"\\s*:\\s*`([^`]*)`")
	objectPairRe   = regexp.MustCompile(`"(` + pathPattern + `)"\s*:\s*\{`)
)

// regexPairs recovers path/content pairs from near-JSON text, including
// truncated responses where only the complete pairs survive. Later
// matches for the same path win.
func regexPairs(response string) entity.FileSet {
	files := entity.FileSet{}
	for _, m := range quotedPairRe.FindAllStringSubmatch(response, -1) {
		files.Set(m[1], Unescape(m[2]))
	}
	for _, m := range backtickPairRe.FindAllStringSubmatch(response, -1) {
		files.Set(m[1], m[2])
	}
	for _, idx := range objectPairRe.FindAllStringSubmatchIndex(response, -1) {
		path := response[idx[2]:idx[3]]
		open := idx[1] - 1
		if end, ok := scanBraces(response, open); ok {
			files.Set(path, response[open:end+1])
		}
	}
	return files
}

// scanBraces finds the matching close brace for the brace at open,
// skipping string literals and escapes.
func scanBraces(s string, open int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return i, true
				}
			}
		}
	}
	return 0, false
}

// ---- strategy 3: fenced code blocks with a path comment ----

var (
	fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\r?\\n(.*?)```")
	pathCommentRe = regexp.MustCompile(`^\s*(?://|/\*|#|<!--)\s*(` + pathPattern + `)`)
)

// fencedCodeBlocks collects fenced blocks whose first line is a comment
// naming the file path.
func fencedCodeBlocks(response string) entity.FileSet {
	files := entity.FileSet{}
	for _, m := range fencedBlockRe.FindAllStringSubmatch(response, -1) {
		block := m[1]
		firstLine, rest, found := strings.Cut(block, "\n")
		if !found {
			continue
		}
		pm := pathCommentRe.FindStringSubmatch(firstLine)
		if pm == nil {
			continue
		}
		files.Set(pm[1], strings.TrimRight(rest, "\n")+"\n")
	}
	return files
}

// ---- strategy 4: pseudo-XML action tags ----

var actionTagRe = regexp.MustCompile(`(?s)<[A-Za-z][\w:-]*[^>]*\bfilePath="([^"]+)"[^>]*>(.*?)</[A-Za-z][\w:-]*>`)

// actionTags parses bolt-style <boltAction type="file" filePath="..">
// blocks.
func actionTags(response string) entity.FileSet {
	files := entity.FileSet{}
	for _, m := range actionTagRe.FindAllStringSubmatch(response, -1) {
		if !isSourcePath(m[1]) {
			continue
		}
		files.Set(m[1], strings.TrimPrefix(strings.TrimRight(m[2], "\n \t"), "\n"))
	}
	return files
}
