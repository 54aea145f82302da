// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// Four participle parser singletons, for parse_query,
// parse_definition_function, parse_definition_struct, and parse_label;
// parse_queries reuses the query parser on each chunk it splits off.
var (
	queryParser       *participle.Parser[Query]
	definitionFunParser *participle.Parser[Function]
	definitionStructParser *participle.Parser[StructDef]
	labelParser       *participle.Parser[Label]
)

func init() {
	var err error

	queryParser, err = participle.Build[Query](
		participle.Lexer(tqlLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build query parser: %v", err))
	}

	definitionFunParser, err = participle.Build[Function](
		participle.Lexer(tqlLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build function-definition parser: %v", err))
	}

	definitionStructParser, err = participle.Build[StructDef](
		participle.Lexer(tqlLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build struct-definition parser: %v", err))
	}

	labelParser, err = participle.Build[Label](
		participle.Lexer(tqlLexer),
		participle.Elide("Whitespace", "Comment"),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build label parser: %v", err))
	}
}

// ParseQuery parses a single schema query or pipeline into a parse tree.
func ParseQuery(text string) (*Query, error) {
	return queryParser.ParseString("", text)
}

// ParseDefinitionFunction parses a single standalone function definition.
func ParseDefinitionFunction(text string) (*Function, error) {
	return definitionFunParser.ParseString("", text)
}

// ParseDefinitionStruct parses a single standalone struct definition.
func ParseDefinitionStruct(text string) (*StructDef, error) {
	return definitionStructParser.ParseString("", text)
}

// ParseLabel parses a single label, matching the whole input exactly.
func ParseLabel(text string) (*Label, error) {
	return labelParser.ParseString("", text)
}
