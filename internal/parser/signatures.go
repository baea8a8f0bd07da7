// Shared pieces of declaration grammar used by both local-function
// statements and member declarations: attribute lists, modifier runs,
// type-parameter lists/constraints, and formal parameter lists.
package parser

import (
	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/token"
)

var modifierKeywords = map[string]ast.Modifier{
	"public": ast.ModPublic, "private": ast.ModPrivate, "protected": ast.ModProtected,
	"internal": ast.ModInternal, "static": ast.ModStatic, "abstract": ast.ModAbstract,
	"sealed": ast.ModSealed, "virtual": ast.ModVirtual, "override": ast.ModOverride,
	"extern": ast.ModExtern, "unsafe": ast.ModUnsafe, "readonly": ast.ModReadonly,
	"volatile": ast.ModVolatile, "new": ast.ModNew, "partial": ast.ModPartial,
	"ref": ast.ModRef, "out": ast.ModOut, "in": ast.ModIn, "params": ast.ModParams,
	"async": ast.ModAsync, "const": ast.ModConst, "fixed": ast.ModFixed,
	"required": ast.ModRequired, "file": ast.ModFile,
}

var modifierTokens = map[token.Type]ast.Modifier{
	token.PUBLIC: ast.ModPublic, token.PRIVATE: ast.ModPrivate, token.PROTECTED: ast.ModProtected,
	token.INTERNAL: ast.ModInternal, token.STATIC: ast.ModStatic, token.ABSTRACT: ast.ModAbstract,
	token.SEALED: ast.ModSealed, token.VIRTUAL: ast.ModVirtual, token.OVERRIDE: ast.ModOverride,
	token.EXTERN: ast.ModExtern, token.UNSAFE: ast.ModUnsafe, token.READONLY: ast.ModReadonly,
	token.VOLATILE: ast.ModVolatile, token.NEW: ast.ModNew, token.REF: ast.ModRef,
	token.OUT: ast.ModOut, token.IN: ast.ModIn, token.PARAMS: ast.ModParams,
	token.CONST: ast.ModConst, token.FIXED: ast.ModFixed,
}

// parseModifiers consumes modifier keywords in any order: the
// parser neither enforces a fixed order nor checks semantic
// compatibility — both are left to a later analysis stage — and stores
// them in source order.
func (p *Parser) parseModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for {
		if m, ok := modifierTokens[p.curTok().Type]; ok {
			p.advance()
			mods = append(mods, m)
			continue
		}
		if p.at(token.IDENT) {
			if m, ok := modifierKeywords[p.curTok().Literal]; ok {
				p.advance()
				mods = append(mods, m)
				continue
			}
		}
		return mods
	}
}

// parseAttributeLists parses zero or more `[Target: Name(args),...]`
// groups ("Attribute"); each bracketed group may itself hold
// several comma-separated attributes sharing one optional target.
func (p *Parser) parseAttributeLists() []*ast.Attribute {
	var attrs []*ast.Attribute
	for p.at(token.LBRACKET) {
		start := p.advance()
		target := ast.AttrTargetNone
		if p.at(token.IDENT) && p.peekTok(1).Type == token.COLON {
			target = attributeTargetFor(p.curTok().Literal)
			p.advance()
			p.advance()
		}
		for {
			name, ok := p.parseQualifiedName()
			if !ok {
				break
			}
			var args []ast.Argument
			if p.at(token.LPAREN) {
				args, _, _ = p.parseArgumentList()
			}
			attrs = append(attrs, &ast.Attribute{Target: target, Name: name, Arguments: args, NodeSpan: spanTok(start)})
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if end, ok := p.expect(token.RBRACKET); ok {
			attrs[len(attrs)-1].NodeSpan = spanTok(start).Cover(spanTok(end))
		}
	}
	return attrs
}

func attributeTargetFor(word string) ast.AttributeTarget {
	switch word {
	case "assembly":
		return ast.AttrTargetAssembly
	case "module":
		return ast.AttrTargetModule
	case "type":
		return ast.AttrTargetType
	case "method":
		return ast.AttrTargetMethod
	case "field":
		return ast.AttrTargetField
	case "param":
		return ast.AttrTargetParam
	case "property":
		return ast.AttrTargetProperty
	case "event":
		return ast.AttrTargetEvent
	case "return":
		return ast.AttrTargetReturn
	default:
		return ast.AttrTargetNone
	}
}

// parseTypeParameterList parses an optional `<T, U,...>` clause; a
// variance annotation (`in`/`out`) may prefix each name.
func (p *Parser) parseTypeParameterList() []*ast.TypeParameter {
	if !p.at(token.LT) {
		return nil
	}
	p.advance()
	var params []*ast.TypeParameter
	for !p.at(token.GT) && !p.atEOF() {
		p.parseAttributeLists()
		variance := ast.VarianceNone
		if p.at(token.IN) {
			p.advance()
			variance = ast.VarianceIn
		} else if p.at(token.OUT) {
			p.advance()
			variance = ast.VarianceOut
		}
		name, ok := p.parseIdentifier()
		if !ok {
			break
		}
		params = append(params, &ast.TypeParameter{Name: name, Variance: variance})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.GT)
	return params
}

// parseTypeParameterConstraints parses zero or more `where T : bound,
// bound,...` clauses and folds them into a flat list (the parser does
// not track which type parameter each clause binds to — that
// association is a semantic-analysis concern).
func (p *Parser) parseTypeParameterConstraints() []ast.TypeParameterConstraint {
	var out []ast.TypeParameterConstraint
	for p.keywordText("where") {
		p.advance()
		if _, ok := p.parseIdentifier(); !ok {
			break
		}
		if _, ok := p.expect(token.COLON); !ok {
			break
		}
		for {
			var c ast.TypeParameterConstraint
			switch {
			case p.at(token.CLASS):
				p.advance()
				c.Class = true
			case p.at(token.STRUCT):
				p.advance()
				c.Struct = true
			case p.keywordText("unmanaged"):
				p.advance()
				c.Unmanaged = true
			case p.keywordText("notnull"):
				p.advance()
				c.NotNull = true
			case p.at(token.NEW):
				p.advance()
				p.expect(token.LPAREN)
				p.expect(token.RPAREN)
				c.New = true
			default:
				typ, ok := p.parseType()
				if !ok {
					return out
				}
				c.BaseType = typ
			}
			out = append(out, c)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	return out
}

// parseParameterList parses `(params)` for a method/constructor/
// indexer/operator/local-function signature.
func (p *Parser) parseParameterList() ([]*ast.Parameter, bool) {
	if _, ok := p.expect(token.LPAREN); !ok {
		return nil, false
	}
	var params []*ast.Parameter
	for !p.at(token.RPAREN) && !p.atEOF() {
		p.parseAttributeLists()
		param, ok := p.parseParameter()
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseParameter() (*ast.Parameter, bool) {
	mod := ast.ArgNone
	isParams := false
	switch {
	case p.at(token.REF):
		p.advance()
		mod = ast.ArgRef
	case p.at(token.OUT):
		p.advance()
		mod = ast.ArgOut
	case p.at(token.IN):
		p.advance()
		mod = ast.ArgIn
	case p.at(token.PARAMS):
		p.advance()
		isParams = true
	}
	typ, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, ok := p.parseIdentifier()
	if !ok {
		return nil, false
	}
	var def ast.Expression
	if p.at(token.ASSIGN) {
		p.advance()
		def, _ = p.parseExpression()
	}
	return &ast.Parameter{Modifier: mod, Params: isParams, Type: typ, Name: name, DefaultValue: def}, true
}
