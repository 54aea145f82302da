// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TQL Contributors

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Stage is the parse-tree node for one pipeline stage. Exactly one field is
// populated. Fetch and Reduce are terminal: the visitor rejects any stage
// following one of them.
type Stage struct {
	Pos      lexer.Position  `parser:""`
	Match    *MatchStage     `parser:"( @@"`
	Insert   *InsertStage    `parser:"| @@"`
	Put      *PutStage       `parser:"| @@"`
	Update   *UpdateStage    `parser:"| @@"`
	Delete   *DeleteStage    `parser:"| @@"`
	Select   *SelectStage    `parser:"| @@"`
	Sort     *SortStage      `parser:"| @@"`
	Offset   *OffsetStage    `parser:"| @@"`
	Limit    *LimitStage     `parser:"| @@"`
	Require  *RequireStage   `parser:"| @@"`
	Distinct *DistinctStage  `parser:"| @@"`
	Fetch    *FetchStage     `parser:"| @@"`
	Reduce   *ReduceStage    `parser:"| @@ )"`
}

// MatchStage: match <conjunction> ;
type MatchStage struct {
	Pos     lexer.Position  `parser:""`
	Pattern *TopConjunction `parser:"'match' @@"`
}

// InsertStage: insert <statement> (';' <statement>)* ;
type InsertStage struct {
	Pos        lexer.Position `parser:""`
	Statements []*Statement   `parser:"'insert' @@ (';' @@)*"`
}

// PutStage: put <statement> (';' <statement>)* ;
type PutStage struct {
	Pos        lexer.Position `parser:""`
	Statements []*Statement   `parser:"'put' @@ (';' @@)*"`
}

// UpdateStage: update <statement> (';' <statement>)* ;
type UpdateStage struct {
	Pos        lexer.Position `parser:""`
	Statements []*Statement   `parser:"'update' @@ (';' @@)*"`
}

// DeleteTarget: a bare variable; "has" attrVar "of" ownerVar; or "links"
// roleTuple "of" relationVar.
type DeleteTarget struct {
	Pos      lexer.Position `parser:""`
	Variable string         `parser:"( @Variable"`
	Has      *HasOf         `parser:"| @@"`
	Links    *LinksOf       `parser:"| @@ )"`
}

// HasOf: has <attrVar> of <ownerVar>.
type HasOf struct {
	Pos   lexer.Position `parser:""`
	Attr  string         `parser:"'has' @Variable"`
	Owner string         `parser:"'of' @Variable"`
}

// LinksOf: links <roleTuple> of <relationVar>.
type LinksOf struct {
	Pos      lexer.Position `parser:""`
	Tuple    *RoleTuple     `parser:"'links' @@"`
	Relation string         `parser:"'of' @Variable"`
}

// DeleteStage: delete <target> (',' <target>)* ;
type DeleteStage struct {
	Pos     lexer.Position  `parser:""`
	Targets []*DeleteTarget `parser:"'delete' @@ (',' @@)*"`
}

// SelectStage: select <var> (',' <var>)* ;
type SelectStage struct {
	Pos  lexer.Position `parser:""`
	Vars []string       `parser:"'select' @Variable (',' @Variable)*"`
}

// SortKey: <var> ('asc'|'desc')?
type SortKey struct {
	Pos      lexer.Position `parser:""`
	Variable string         `parser:"@Variable"`
	Order    string         `parser:"@('asc' | 'desc')?"`
}

// SortStage: sort <key> (',' <key>)* ;
type SortStage struct {
	Pos  lexer.Position `parser:""`
	Keys []*SortKey      `parser:"'sort' @@ (',' @@)*"`
}

// OffsetStage: offset <integer> ;
type OffsetStage struct {
	Pos lexer.Position `parser:""`
	N   string         `parser:"'offset' @Integer"`
}

// LimitStage: limit <integer> ;
type LimitStage struct {
	Pos lexer.Position `parser:""`
	N   string         `parser:"'limit' @Integer"`
}

// RequireStage: require <var> (',' <var>)* ;
type RequireStage struct {
	Pos  lexer.Position `parser:""`
	Vars []string       `parser:"'require' @Variable (',' @Variable)*"`
}

// DistinctStage: distinct ;
type DistinctStage struct {
	Pos lexer.Position `parser:""`
	Kw  bool           `parser:"@'distinct'"`
}
