package treesitter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/XingYu-Zhong/CodeRepoIndex/internal/logging"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/model"
	"github.com/XingYu-Zhong/CodeRepoIndex/internal/ports"
)

// Extractor implements the Snippet Extractor pipeline (§4.2) on top of a
// Registry-provided grammar parser.
type Extractor struct {
	registry *Registry
	logger   interface {
		Warn(msg string, args ...interface{})
	}
}

// NewExtractor builds an Extractor over registry.
func NewExtractor(registry *Registry) *Extractor {
	return &Extractor{registry: registry, logger: logging.New("treesitter.extractor")}
}

var _ ports.Parser = (*Extractor)(nil)

// SupportsLanguage delegates to the underlying registry.
func (e *Extractor) SupportsLanguage(lang model.Language) bool {
	return e.registry.SupportsLanguage(lang)
}

// ParseFile runs the full pipeline of §4.2 over source.
func (e *Extractor) ParseFile(path string, source []byte, lang model.Language, cfg ports.ParserConfig) *model.ParseResult {
	start := time.Now()
	result := &model.ParseResult{Language: lang, Path: path, Metadata: map[string]any{}}

	// Step 1: size gate.
	if cfg.MaxFileSize > 0 && int64(len(source)) > cfg.MaxFileSize {
		result.Errors = append(result.Errors, model.NewParseError(model.ErrFileTooLarge, path, nil))
		result.Metadata["file_size"] = int64(len(source))
		result.ProcessingTime = time.Since(start)
		return result
	}
	result.Metadata["file_size"] = int64(len(source))

	// Step 2: decode.
	dr := decode(source, cfg.FallbackEncoding, cfg.EncodingConfidenceThreshold)
	if !dr.ok {
		result.Errors = append(result.Errors, model.NewParseError(model.ErrEncodingUnresolved, path, nil))
		result.ProcessingTime = time.Since(start)
		return result
	}
	result.Metadata["encoding"] = dr.encoding

	vocab, ok := NodeVocabularyFor(lang)
	if !ok {
		result.Errors = append(result.Errors, model.NewParseError(model.ErrLanguageUnavailable, path, nil))
		result.ProcessingTime = time.Since(start)
		return result
	}

	// Step 3: parse.
	parser, err := e.registry.acquire(lang)
	if err != nil {
		result.Errors = append(result.Errors, model.NewParseError(model.ErrLanguageUnavailable, path, err))
		result.ProcessingTime = time.Since(start)
		return result
	}
	defer e.registry.release(lang, parser)

	tree := parser.Parse(dr.text, nil)
	if tree == nil {
		result.Errors = append(result.Errors, model.NewParseError(model.ErrParseSyntaxError, path, fmt.Errorf("grammar returned no tree")))
		result.ProcessingTime = time.Since(start)
		return result
	}
	defer tree.Close()

	root := tree.RootNode()

	w := &walker{
		source: dr.text,
		lang:   lang,
		vocab:  vocab,
		path:   path,
		cfg:    cfg,
	}
	w.collectComments(root)
	sort.SliceStable(w.comments, func(i, j int) bool { return w.comments[i].endLine < w.comments[j].endLine })
	w.walk(root)

	sort.SliceStable(w.snippets, func(i, j int) bool { return w.snippets[i].Less(w.snippets[j]) })

	result.Snippets = w.snippets
	result.ProcessingTime = time.Since(start)
	return result
}

// nodeText returns the source text spanned by n, grounded on the reference
// stack's identical helper (byte-slice, not the tree-sitter text accessor).
func nodeText(n *tree_sitter.Node, source []byte) string {
	return string(source[n.StartByte():n.EndByte()])
}

// childByKind returns the first direct child of n whose kind is one of
// kinds, or nil.
func childByKind(n *tree_sitter.Node, kinds ...string) *tree_sitter.Node {
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		c := n.Child(i)
		k := c.Kind()
		for _, want := range kinds {
			if k == want {
				return c
			}
		}
	}
	return nil
}

// commentBlock is one comment node's span and stripped text.
type commentBlock struct {
	startLine int // 1-based
	endLine   int // 1-based
	text      string
}

// walker holds pre-order traversal state: the class stack and the file's
// comment inventory, used to implement steps 4-9 of §4.2.
type walker struct {
	source     []byte
	lang       model.Language
	vocab      NodeVocabulary
	path       string
	cfg        ports.ParserConfig
	comments   []commentBlock
	classStack []string
	snippets   []*model.Snippet
}

// collectComments walks the whole tree gathering every comment node,
// sorted by end line, per the algorithm in base spec §9.
func (w *walker) collectComments(node *tree_sitter.Node) {
	if node == nil {
		return
	}
	kind := node.Kind()
	if w.vocab.Is(RoleComment, kind) {
		text := stripCommentDelimiters(w.lang, nodeText(node, w.source))
		w.comments = append(w.comments, commentBlock{
			startLine: int(node.StartPosition().Row) + 1,
			endLine:   int(node.EndPosition().Row) + 1,
			text:      text,
		})
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		w.collectComments(node.Child(i))
	}
}

// commentFor implements the backward search of step 7: the maximal
// contiguous run of comment nodes ending at line L-1.
func (w *walker) commentFor(lineStart int) string {
	target := lineStart - 1
	var run []commentBlock
	for i := len(w.comments) - 1; i >= 0; i-- {
		c := w.comments[i]
		if c.endLine == target {
			run = append([]commentBlock{c}, run...)
			target = c.startLine - 1
			continue
		}
		if c.endLine < target {
			break
		}
	}
	if len(run) == 0 {
		return ""
	}
	parts := make([]string, len(run))
	for i, c := range run {
		parts[i] = c.text
	}
	return strings.Join(parts, "\n")
}

// pythonDocstring implements the alternative docstring detection: the first
// expression-statement inside a body whose expression is a string literal.
func (w *walker) pythonDocstring(bodyNode *tree_sitter.Node) string {
	if bodyNode == nil || bodyNode.ChildCount() == 0 {
		return ""
	}
	first := bodyNode.Child(0)
	if first == nil || first.Kind() != "expression_statement" || first.ChildCount() == 0 {
		return ""
	}
	expr := first.Child(0)
	if expr == nil || expr.Kind() != "string" {
		return ""
	}
	return strings.Trim(nodeText(expr, w.source), "\"'")
}

// walk performs the pre-order traversal of step 4, maintaining the class
// stack and emitting Snippet records.
func (w *walker) walk(node *tree_sitter.Node) {
	if node == nil {
		return
	}
	kind := node.Kind()

	switch {
	case w.vocab.Is(RoleClassDecl, kind):
		if w.emitClass(node) {
			w.classStack = append(w.classStack, w.extractName(node))
			w.walkChildren(node)
			w.classStack = w.classStack[:len(w.classStack)-1]
			return
		}
	case kind == "variable_declarator" && (w.lang == model.LanguageJavaScript || w.lang == model.LanguageTypeScript || w.lang == model.LanguageTSX):
		if w.emitAssignedFunction(node) {
			w.walkChildren(node)
			return
		}
	case w.vocab.Is(RoleFunctionDecl, kind):
		// Arrow functions have no name of their own, and a function
		// expression is named only by a direct identifier child; the generic
		// descendant scan would return a parameter name for either.
		name := ""
		switch kind {
		case "arrow_function":
		case "function_expression":
			if id := childByKind(node, "identifier"); id != nil {
				name = nodeText(id, w.source)
			}
		default:
			name = w.extractName(node)
		}
		w.emitFunction(node, name)
		w.walkChildren(node)
		return
	}

	w.walkChildren(node)
}

func (w *walker) walkChildren(node *tree_sitter.Node) {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		w.walk(node.Child(i))
	}
}

// isGoStruct reports whether a Go type_spec node wraps a struct_type,
// the only type_spec shape this module classifies as class-decl (§4.2
// Go specifics).
func (w *walker) isGoStruct(node *tree_sitter.Node) bool {
	return childByKind(node, "struct_type") != nil
}

func (w *walker) emitClass(node *tree_sitter.Node) bool {
	if w.lang == model.LanguageGo && node.Kind() == "type_spec" && !w.isGoStruct(node) {
		return false
	}
	name := w.extractName(node)
	if name == "" {
		return false // anonymous classes are not emitted
	}

	lineStart := int(node.StartPosition().Row) + 1
	lineEnd := int(node.EndPosition().Row) + 1
	code := nodeText(node, w.source)
	comment := ""
	if w.cfg.ExtractComments {
		comment = w.commentFor(lineStart)
	}

	snippet := &model.Snippet{
		Kind:      model.KindCodeClass,
		Path:      w.path,
		Name:      name,
		Code:      []byte(code),
		LineStart: lineStart,
		LineEnd:   lineEnd,
		Language:  w.lang,
		Comment:   comment,
	}
	w.finalize(snippet)
	w.snippets = append(w.snippets, snippet)
	return true
}

func (w *walker) emitFunction(node *tree_sitter.Node, name string) {
	if name == "" {
		return // step 5: anonymous functions are skipped
	}

	classDepth := len(w.classStack)
	kind := model.KindCodeFunction
	className := ""
	if classDepth > 0 {
		kind = model.KindCodeMethod
		className = w.classStack[classDepth-1]
	}

	if kind == model.KindCodeMethod && w.cfg.IgnorePrivateMethods && strings.HasPrefix(name, "_") {
		return
	}

	lineStart := int(node.StartPosition().Row) + 1
	lineEnd := int(node.EndPosition().Row) + 1

	if span := lineEnd - lineStart + 1; span < w.cfg.MinFunctionLines || (w.cfg.MaxFunctionLines > 0 && span > w.cfg.MaxFunctionLines) {
		return
	}

	code := nodeText(node, w.source)
	args := w.extractArgs(node)

	comment := ""
	if w.cfg.ExtractComments {
		comment = w.commentFor(lineStart)
	}
	if comment == "" && w.cfg.ExtractDocstrings && w.lang == model.LanguagePython {
		body := childByKind(node, "block")
		comment = w.pythonDocstring(body)
	}

	snippet := &model.Snippet{
		Kind:      kind,
		Path:      w.path,
		Name:      name,
		FuncName:  name,
		Args:      args,
		ClassName: className,
		Code:      []byte(code),
		LineStart: lineStart,
		LineEnd:   lineEnd,
		Language:  w.lang,
		Comment:   comment,
	}
	w.finalize(snippet)
	w.snippets = append(w.snippets, snippet)
}

// emitAssignedFunction handles `const x = () => {}` / `const x = function(){}`
// shapes: the identifier lives on the sibling variable_declarator, not on
// the arrow/function node itself, so this is a distinct top-down rule (not
// parent-chain climbing from the function node, which step 5 forbids).
func (w *walker) emitAssignedFunction(node *tree_sitter.Node) bool {
	idNode := childByKind(node, "identifier")
	if idNode == nil {
		return false
	}
	valueNode := childByKind(node, "arrow_function", "function_expression", "function")
	if valueNode == nil {
		return false
	}
	name := nodeText(idNode, w.source)
	w.emitFunction(valueNode, name)
	return true
}

// extractName finds the identifier/name child of a symbol declaration,
// grounded on the reference stack's extractName (a fixed list of common
// name-node kinds, tried as direct children first, then descendants).
func (w *walker) extractName(node *tree_sitter.Node) string {
	if id := childByKind(node, "identifier", "field_identifier", "property_identifier", "type_identifier", "simple_identifier", "name", "constant"); id != nil {
		return nodeText(id, w.source)
	}
	if found := w.firstMatchingDescendant(node, RoleIdentifier, 3); found != nil {
		return nodeText(found, w.source)
	}
	return ""
}

// extractArgs returns the verbatim text of the node's parameter list
// (step 6), including surrounding punctuation.
func (w *walker) extractArgs(node *tree_sitter.Node) string {
	if params := childByKind(node, "parameters", "formal_parameters", "parameter_list", "function_value_parameters"); params != nil {
		return nodeText(params, w.source)
	}
	if found := w.firstMatchingDescendant(node, RoleParameters, 3); found != nil {
		return nodeText(found, w.source)
	}
	return ""
}

// firstMatchingDescendant scans node's descendants, up to maxDepth levels,
// for the first child whose kind satisfies role. The depth cap mirrors the
// reference stack's generic-dispatch walk (also capped at 3), avoiding a
// scan into a nested function/class body for the wrong token.
func (w *walker) firstMatchingDescendant(node *tree_sitter.Node, role Role, maxDepth int) *tree_sitter.Node {
	if maxDepth <= 0 || node == nil {
		return nil
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if w.vocab.Is(role, child.Kind()) {
			return child
		}
	}
	for i := uint(0); i < count; i++ {
		if found := w.firstMatchingDescendant(node.Child(i), role, maxDepth-1); found != nil {
			return found
		}
	}
	return nil
}

// finalize computes the hash and keyword bag common to every emitted
// snippet kind (steps 9-10), and derives directory/filename from path.
func (w *walker) finalize(s *model.Snippet) {
	s.Directory, s.Filename = splitPath(s.Path)
	s.ContentHash = model.ContentHashOf(s.Code)
	s.Keywords = harvestKeywords(s.Path, s.Code, []byte(s.Comment), w.cfg)
}
