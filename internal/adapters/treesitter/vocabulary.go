package treesitter

import "github.com/XingYu-Zhong/CodeRepoIndex/internal/model"

// Role is a semantic role in the Node Vocabulary (§4.1): the per-language
// mapping from concrete-syntax node-type names to what they mean.
type Role string

const (
	RoleClassDecl    Role = "class-decl"
	RoleFunctionDecl Role = "function-decl"
	RoleIdentifier   Role = "identifier"
	RoleParameters   Role = "parameters"
	RoleBody         Role = "body"
	RoleComment      Role = "comment"
)

// NodeVocabulary is the set of concrete-syntax node-type names that satisfy
// each semantic role for one language. Kept as an external, data-only table
// (the vocabularies literal below holds no logic) so adding a language is a
// data-only change, per §4.1's externalization requirement.
type NodeVocabulary map[Role]map[string]bool

func roleSet(kinds ...string) map[string]bool {
	out := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		out[k] = true
	}
	return out
}

// vocabularies is the static Node Vocabulary table, one entry per language
// in the closed enumeration. Node-type names are grounded on the reference
// stack's symbolRules/langMap tables, cross-checked against each grammar's
// published node-type inventory.
var vocabularies = map[model.Language]NodeVocabulary{
	model.LanguagePython: {
		RoleClassDecl:    roleSet("class_definition"),
		RoleFunctionDecl: roleSet("function_definition"),
		RoleIdentifier:   roleSet("identifier"),
		RoleParameters:   roleSet("parameters"),
		RoleBody:         roleSet("block"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageJavaScript: {
		RoleClassDecl:    roleSet("class_declaration"),
		RoleFunctionDecl: roleSet("function_declaration", "method_definition", "arrow_function", "function_expression", "generator_function_declaration"),
		RoleIdentifier:   roleSet("identifier", "property_identifier"),
		RoleParameters:   roleSet("formal_parameters"),
		RoleBody:         roleSet("statement_block", "class_body"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageTypeScript: {
		RoleClassDecl:    roleSet("class_declaration", "interface_declaration"),
		RoleFunctionDecl: roleSet("function_declaration", "method_definition", "arrow_function", "function_expression"),
		RoleIdentifier:   roleSet("identifier", "property_identifier", "type_identifier"),
		RoleParameters:   roleSet("formal_parameters"),
		RoleBody:         roleSet("statement_block", "class_body"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageTSX: {
		RoleClassDecl:    roleSet("class_declaration", "interface_declaration"),
		RoleFunctionDecl: roleSet("function_declaration", "method_definition", "arrow_function", "function_expression"),
		RoleIdentifier:   roleSet("identifier", "property_identifier", "type_identifier"),
		RoleParameters:   roleSet("formal_parameters"),
		RoleBody:         roleSet("statement_block", "class_body"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageJava: {
		RoleClassDecl:    roleSet("class_declaration", "interface_declaration", "enum_declaration"),
		RoleFunctionDecl: roleSet("method_declaration", "constructor_declaration"),
		RoleIdentifier:   roleSet("identifier", "type_identifier"),
		RoleParameters:   roleSet("formal_parameters"),
		RoleBody:         roleSet("block", "class_body"),
		RoleComment:      roleSet("line_comment", "block_comment"),
	},
	model.LanguageGo: {
		RoleClassDecl:    roleSet("type_spec"), // struct_type wrapped in type_spec, see extractor
		RoleFunctionDecl: roleSet("function_declaration", "method_declaration"),
		RoleIdentifier:   roleSet("identifier", "field_identifier", "type_identifier"),
		RoleParameters:   roleSet("parameter_list"),
		RoleBody:         roleSet("block"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageC: {
		RoleClassDecl:    roleSet("struct_specifier"),
		RoleFunctionDecl: roleSet("function_definition"),
		RoleIdentifier:   roleSet("identifier", "field_identifier", "type_identifier"),
		RoleParameters:   roleSet("parameter_list"),
		RoleBody:         roleSet("compound_statement"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageCPP: {
		RoleClassDecl:    roleSet("class_specifier", "struct_specifier"),
		RoleFunctionDecl: roleSet("function_definition"),
		RoleIdentifier:   roleSet("identifier", "field_identifier", "type_identifier"),
		RoleParameters:   roleSet("parameter_list"),
		RoleBody:         roleSet("compound_statement", "field_declaration_list"),
		RoleComment:      roleSet("comment"),
	},
	model.LanguageKotlin: {
		RoleClassDecl:    roleSet("class_declaration", "object_declaration"),
		RoleFunctionDecl: roleSet("function_declaration"),
		RoleIdentifier:   roleSet("simple_identifier", "type_identifier"),
		RoleParameters:   roleSet("function_value_parameters"),
		RoleBody:         roleSet("function_body", "class_body"),
		RoleComment:      roleSet("line_comment", "multiline_comment"),
	},
	model.LanguageLua: {
		RoleClassDecl:    roleSet(), // Lua has no class-decl concept; left empty on purpose
		RoleFunctionDecl: roleSet("function_declaration", "local_function", "function_definition"),
		RoleIdentifier:   roleSet("identifier"),
		RoleParameters:   roleSet("parameters"),
		RoleBody:         roleSet("block"),
		RoleComment:      roleSet("comment"),
	},
}

// NodeVocabularyFor returns the Node Vocabulary for lang, and false if the
// language is not in the closed enumeration.
func NodeVocabularyFor(lang model.Language) (NodeVocabulary, bool) {
	v, ok := vocabularies[lang]
	return v, ok
}

// Is reports whether kind satisfies role for this vocabulary.
func (v NodeVocabulary) Is(role Role, kind string) bool {
	return v[role][kind]
}

// AnyOf reports whether kind satisfies any of roles, and returns the first
// matching role in the order the roles are given.
func (v NodeVocabulary) AnyOf(kind string, roles ...Role) (Role, bool) {
	for _, r := range roles {
		if v[r][kind] {
			return r, true
		}
	}
	return "", false
}
