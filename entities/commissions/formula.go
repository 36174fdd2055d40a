package commissions

import (
	"fmt"
	"strconv"
	"strings"
)

// EvaluateFormula consome a sequência de tokens da esquerda para a direita,
// substituindo tokens entre colchetes pelo fato numérico correspondente, e
// avalia a expressão respeitando precedência de operadores e parênteses.
func EvaluateFormula(tokens []string, variables map[string]float64) (float64, error) {
	parser := &formulaParser{tokens: tokens, variables: variables}

	value, err := parser.parseExpression()
	if err != nil {
		return 0, err
	}

	if parser.pos != len(parser.tokens) {
		return 0, fmt.Errorf("token inesperado na fórmula: %s", parser.tokens[parser.pos])
	}

	return value, nil
}

type formulaParser struct {
	tokens    []string
	variables map[string]float64
	pos       int
}

func (p *formulaParser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *formulaParser) parseExpression() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		token, ok := p.peek()
		if !ok || (token != "+" && token != "-") {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}

		if token == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *formulaParser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		token, ok := p.peek()
		if !ok || (token != "*" && token != "/") {
			return left, nil
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}

		if token == "*" {
			left *= right
		} else {
			// Divisão sem guarda: divisor zero produz infinito, como no
			// restante dos quocientes do sistema.
			left /= right
		}
	}
}

func (p *formulaParser) parseFactor() (float64, error) {
	token, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("fórmula termina inesperadamente")
	}
	p.pos++

	if token == "(" {
		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing != ")" {
			return 0, fmt.Errorf("parêntese não fechado na fórmula")
		}
		p.pos++
		return value, nil
	}

	if token == "-" {
		value, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -value, nil
	}

	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		name := token[1 : len(token)-1]
		value, ok := p.variables[name]
		if !ok {
			return 0, fmt.Errorf("variável desconhecida na fórmula: %s", name)
		}
		return value, nil
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("token inválido na fórmula: %s", token)
	}
	return value, nil
}
