package produto

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrTemplateDesconhecido = errors.New("template de importação desconhecido")

// Template identifica a política de mapeamento de colunas de uma planilha
// colada pelo usuário para o formato canônico de produto.
type Template string

const (
	TemplatePadrao          Template = "PADRAO"
	TemplateGermaniProdutos Template = "GERMANI_PRODUTOS"
	TemplateDallasLogistica Template = "DALLAS_LOGISTICA"
)

// aliases mapeia cabeçalhos de coluna (normalizados em maiúsculas, sem
// acento sofisticado) para o nome canônico do campo.
var aliasesComuns = map[string]string{
	"SKU":                  "sku",
	"CODIGO":              "sku",
	"COD":                 "sku",
	"DESCRICAO":           "descricao",
	"DESCRIÇÃO":           "descricao",
	"PRODUTO":             "descricao",
	"UNIDADE":             "unidade",
	"UND":                 "unidade",
	"UN":                  "unidade",
	"FAMILIA":             "familia",
	"FAMÍLIA":             "familia",
	"GRUPO_PRECO":         "grupo_preco",
	"GRUPO":               "grupo_preco",
	"PALLET":              "pallet",
	"PALETE":              "pallet",
	"PALLET_CAIXAS":       "pallet_caixas",
	"CAIXAS_PALLET":       "pallet_caixas",
	"EAN13":               "ean13",
	"EAN":                 "ean13",
	"EAN14":               "ean14_caixa",
	"EAN14_CAIXA":         "ean14_caixa",
	"DUN14":               "ean14_caixa",
	"ATIVO":               "ativo",
	"REF_FAMILIA":         "ref_familia",
	"PESO":                "peso_kg",
	"PESO_KG":             "peso_kg",
	"APRESENTACAO":        "apresentacao",
	"APRESENTAÇÃO":        "apresentacao",
	"CUBAGEM":             "cubagem_m3",
	"CUBAGEM_M3":          "cubagem_m3",
	"PESO_LIQ":            "peso_liq_kg",
	"PESO_LIQ_KG":         "peso_liq_kg",
	"PESO_LIQUIDO":        "peso_liq_kg",
	"PESO_BRUTO":          "peso_bruto_kg",
	"PESO_BRUTO_KG":       "peso_bruto_kg",
	"CATEGORIA_PRECO":     "categoria_preco_base",
	"CATEGORIA_PRECO_BASE": "categoria_preco_base",
}

// padraoPallet reconhece o descritor "lastro x altura" (ex: 8x5, 10X4)
var padraoPallet = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// LinhaImportada é o resultado do mapeamento de uma linha da planilha:
// ou um produto canônico, ou o erro que impediu o aproveitamento da linha.
type LinhaImportada struct {
	Linha   int // 1-based, como o usuário enxerga na planilha
	Produto *Produto
	Erro    string
}

// ErroLinha relata uma linha rejeitada na resposta da importação
type ErroLinha struct {
	Linha int    `json:"linha"`
	Erro  string `json:"erro"`
}

// ResultadoImportacao resume o lote processado
type ResultadoImportacao struct {
	Inseridos   int         `json:"inseridos"`
	Atualizados int         `json:"atualizados"`
	Erros       []ErroLinha `json:"erros"`
}

// TemplateValido informa se o identificador corresponde a um template suportado
func TemplateValido(t Template) bool {
	switch t {
	case TemplatePadrao, TemplateGermaniProdutos, TemplateDallasLogistica:
		return true
	}
	return false
}

// MapearLinhas converte as linhas heterogêneas coladas pelo cliente para o
// formato canônico, aplicando a política do template. Linhas inválidas não
// interrompem o lote: viram entradas com Erro preenchido.
func MapearLinhas(t Template, empresaID string, rows []map[string]any) ([]LinhaImportada, error) {
	if !TemplateValido(t) {
		return nil, ErrTemplateDesconhecido
	}

	linhas := make([]LinhaImportada, 0, len(rows))
	for i, row := range rows {
		numero := i + 1
		p := mapearLinha(t, empresaID, row)
		if err := p.Validar(); err != nil {
			linhas = append(linhas, LinhaImportada{Linha: numero, Erro: err.Error()})
			continue
		}
		p.Normalizar()
		linhas = append(linhas, LinhaImportada{Linha: numero, Produto: p})
	}
	return linhas, nil
}

func mapearLinha(t Template, empresaID string, row map[string]any) *Produto {
	campos := map[string]any{}
	for coluna, valor := range row {
		canonica := nomeCanonico(coluna)
		if canonica == "" {
			continue
		}
		campos[canonica] = valor
	}

	now := time.Now()
	p := &Produto{
		EmpresaID:          empresaID,
		SKU:                texto(campos["sku"]),
		Descricao:          texto(campos["descricao"]),
		Unidade:            texto(campos["unidade"]),
		Familia:            texto(campos["familia"]),
		Ativo:              booleano(campos["ativo"], true),
		RefFamilia:         booleano(campos["ref_familia"], false),
		GrupoPreco:         inteiroOuPadrao(campos["grupo_preco"], 1),
		PesoKg:             numero(campos["peso_kg"]),
		EAN13:              texto(campos["ean13"]),
		EAN14Caixa:         texto(campos["ean14_caixa"]),
		Apresentacao:       texto(campos["apresentacao"]),
		CubagemM3:          numero(campos["cubagem_m3"]),
		PesoLiqKg:          numero(campos["peso_liq_kg"]),
		PesoBrutoKg:        numero(campos["peso_bruto_kg"]),
		CategoriaPrecoBase: texto(campos["categoria_preco_base"]),
		Pallet:             texto(campos["pallet"]),
		PalletCaixas:       inteiro(campos["pallet_caixas"]),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	switch t {
	case TemplateGermaniProdutos:
		// a planilha da Germani traz dimensões físicas de outra base,
		// que não batem com o cadastro; descartamos
		p.CubagemM3 = nil
		p.PesoLiqKg = nil
		p.PesoBrutoKg = nil
	case TemplateDallasLogistica:
		if p.PesoKg == nil {
			p.PesoKg = p.PesoBrutoKg
		}
	}

	// "8x5" vira contagem de caixas quando a planilha não informa
	if p.PalletCaixas == nil {
		if caixas, ok := CaixasDoPallet(p.Pallet); ok {
			p.PalletCaixas = &caixas
		}
	}

	return p
}

// CaixasDoPallet deriva a contagem de caixas de um descritor NxM
func CaixasDoPallet(pallet string) (int, bool) {
	m := padraoPallet.FindStringSubmatch(strings.TrimSpace(pallet))
	if m == nil {
		return 0, false
	}
	lastro, _ := strconv.Atoi(m[1])
	altura, _ := strconv.Atoi(m[2])
	return lastro * altura, true
}

// Reconciliar decide, linha a linha, entre inserir e atualizar com base no
// índice SKU → id dos produtos já cadastrados da empresa. Produtos
// inseridos entram no índice, de modo que linhas posteriores do mesmo lote
// com o mesmo SKU atualizem em vez de duplicar.
func Reconciliar(linhas []LinhaImportada, indexSKU map[string]string) (inserir, atualizar []*Produto, resultado *ResultadoImportacao) {
	resultado = &ResultadoImportacao{Erros: []ErroLinha{}}

	for _, linha := range linhas {
		if linha.Erro != "" {
			resultado.Erros = append(resultado.Erros, ErroLinha{Linha: linha.Linha, Erro: linha.Erro})
			continue
		}

		p := linha.Produto
		if id, existe := indexSKU[p.SKU]; existe {
			p.ID = id
			atualizar = append(atualizar, p)
			resultado.Atualizados++
			continue
		}

		p.ID = uuid.New().String()
		indexSKU[p.SKU] = p.ID
		inserir = append(inserir, p)
		resultado.Inseridos++
	}

	return inserir, atualizar, resultado
}

func nomeCanonico(coluna string) string {
	chave := strings.ToUpper(strings.TrimSpace(coluna))
	if canonica, ok := aliasesComuns[chave]; ok {
		return canonica
	}
	// cabeçalho já no formato canônico (sku, descricao, peso_kg...)
	minuscula := strings.ToLower(strings.TrimSpace(coluna))
	for _, canonica := range aliasesComuns {
		if canonica == minuscula {
			return canonica
		}
	}
	return ""
}

func texto(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		// planilhas frequentemente entregam códigos como número
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func numero(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func inteiro(v any) *int {
	f := numero(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func inteiroOuPadrao(v any, padrao int) int {
	n := inteiro(v)
	if n == nil || *n == 0 {
		return padrao
	}
	return *n
}

// booleano aceita as convenções usuais de planilha: true/false, 1/0, "SIM"
func booleano(v any, padrao bool) bool {
	switch t := v.(type) {
	case nil:
		return padrao
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "":
			return padrao
		case "1", "SIM", "S", "TRUE", "VERDADEIRO":
			return true
		default:
			return false
		}
	default:
		return padrao
	}
}
