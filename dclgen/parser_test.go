package dclgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDCLGEN = `
      ******************************************************************
      * DCLGEN TABLE(EIP_ADT_TRAIL)                                    *
      ******************************************************************
           EXEC SQL DECLARE EIP_ADT_TRAIL TABLE
           ( S_DT_TM                        TIMESTAMP NOT NULL,
             C_USER_1                       CHAR(8) NOT NULL,
             C_USER_2                       CHAR(8) NOT NULL,
             C_SRVC_ID                      CHAR(3) NOT NULL,
             P_EVNT_TP                      CHAR(3) NOT NULL,
             X_EVNT_DSCR                    VARCHAR(1000) NOT NULL,
             C_PRG_REF                      CHAR(20) NOT NULL,
             C_BIC_CD                       CHAR(11) NOT NULL,
             C_SYS_ALT_REF                  INTEGER NOT NULL
           ) END-EXEC.
`

func TestParseSampleTable(t *testing.T) {
	table, err := NewParser().Parse(sampleDCLGEN)
	require.NoError(t, err)

	assert.Equal(t, "EIP_ADT_TRAIL", table.TableName)
	assert.Empty(t, table.SchemaName)
	require.Len(t, table.Attributes, 9)
}

func TestParsePreservesDeclarationOrder(t *testing.T) {
	table, err := NewParser().Parse(sampleDCLGEN)
	require.NoError(t, err)

	wantOrder := []string{
		"S_DT_TM", "C_USER_1", "C_USER_2", "C_SRVC_ID", "P_EVNT_TP",
		"X_EVNT_DSCR", "C_PRG_REF", "C_BIC_CD", "C_SYS_ALT_REF",
	}
	for i, name := range wantOrder {
		assert.Equal(t, name, table.Attributes[i].Name)
	}
}

func TestParseAttributeTypes(t *testing.T) {
	table, err := NewParser().Parse(sampleDCLGEN)
	require.NoError(t, err)

	byName := make(map[string]Attribute)
	for _, attr := range table.Attributes {
		byName[attr.Name] = attr
	}

	ts := byName["S_DT_TM"]
	assert.Equal(t, "TIMESTAMP", ts.Type)
	assert.False(t, ts.Nullable)
	assert.Nil(t, ts.Length)

	char := byName["C_USER_1"]
	assert.Equal(t, "CHAR", char.Type)
	require.NotNil(t, char.Length)
	assert.Equal(t, 8, *char.Length)

	varchar := byName["X_EVNT_DSCR"]
	assert.Equal(t, "VARCHAR", varchar.Type)
	require.NotNil(t, varchar.Length)
	assert.Equal(t, 1000, *varchar.Length)

	integer := byName["C_SYS_ALT_REF"]
	assert.Equal(t, "INTEGER", integer.Type)
	assert.Nil(t, integer.Length)
}

func TestParseIsIdempotent(t *testing.T) {
	parser := NewParser()

	first, err := parser.Parse(sampleDCLGEN)
	require.NoError(t, err)
	second, err := parser.Parse(sampleDCLGEN)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseSchemaInDeclareStatement(t *testing.T) {
	content := `
           EXEC SQL DECLARE SCHEMA1.TABLE1 TABLE
           ( FIELD1                        INTEGER NOT NULL
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "SCHEMA1", table.SchemaName)
	assert.Equal(t, "TABLE1", table.TableName)
}

func TestParseSchemaInPragmaHeader(t *testing.T) {
	content := `
      ******************************************************************
      * DCLGEN TABLE(SCHEMA2.TABLE2)                                   *
      ******************************************************************
           EXEC SQL DECLARE TABLE2 TABLE
           ( FIELD1                        INTEGER NOT NULL
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "SCHEMA2", table.SchemaName)
	assert.Equal(t, "TABLE2", table.TableName)
}

func TestParseSchemaPrecedence(t *testing.T) {
	content := `
      ******************************************************************
      * DCLGEN TABLE(SCHEMA3.TABLE3)                                   *
      ******************************************************************
           EXEC SQL DECLARE SCHEMA4.TABLE3 TABLE
           ( FIELD1                        INTEGER NOT NULL
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "SCHEMA4", table.SchemaName)
	assert.Equal(t, "TABLE3", table.TableName)
}

func TestParseMissingDeclaration(t *testing.T) {
	_, err := NewParser().Parse("this is not a dclgen file")
	assert.ErrorIs(t, err, ErrMissingDeclaration)
}

func TestParseMissingDeclarationBlock(t *testing.T) {
	_, err := NewParser().Parse("           EXEC SQL DECLARE FOO TABLE")
	assert.ErrorIs(t, err, ErrMissingDeclarationBlock)
}

func TestParseInvalidDecimal(t *testing.T) {
	content := `
           EXEC SQL DECLARE BAD_TABLE TABLE
           ( Q_AMOUNT                      DEC NOT NULL
           ) END-EXEC.
`
	_, err := NewParser().Parse(content)
	assert.ErrorIs(t, err, ErrInvalidDecimalFormat)
}

func TestParseCommentLineBetweenDeclarations(t *testing.T) {
	content := `
           EXEC SQL DECLARE COMMENTED TABLE
           ( FIELD1                        INTEGER NOT NULL,
      *      FIELD_GONE                    CHAR(5) NOT NULL,
             FIELD2                        CHAR(3) NOT NULL
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)

	require.Len(t, table.Attributes, 2)
	assert.Equal(t, "FIELD1", table.Attributes[0].Name)
	assert.Equal(t, "FIELD2", table.Attributes[1].Name)
	for _, attr := range table.Attributes {
		assert.NotEqual(t, "*", attr.Name)
	}
}

func TestParseEmptyDeclarationBody(t *testing.T) {
	content := `
           EXEC SQL DECLARE EMPTY_TABLE TABLE
           (
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "EMPTY_TABLE", table.TableName)
	assert.Empty(t, table.Attributes)
}

func TestParseMultilineDeclaration(t *testing.T) {
	content := `
           EXEC SQL DECLARE TS_TABLE TABLE
           ( MULTILINE_TS                  TIMESTAMP
               WITH TIME ZONE NOT NULL,
             FIELD2                        INTEGER
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)

	require.Len(t, table.Attributes, 2)
	assert.Equal(t, "MULTILINE_TS", table.Attributes[0].Name)
	assert.Equal(t, "TIMESTAMP", table.Attributes[0].Type)
	assert.False(t, table.Attributes[0].Nullable)
}

func TestParseDecimalColumns(t *testing.T) {
	content := `
           EXEC SQL DECLARE AMOUNTS TABLE
           ( Q_TOTAL                       DECIMAL(10,2) NOT NULL,
             Q_RATE                        DEC(5) NOT NULL
           ) END-EXEC.
`
	table, err := NewParser().Parse(content)
	require.NoError(t, err)
	require.Len(t, table.Attributes, 2)

	total := table.Attributes[0]
	require.NotNil(t, total.Precision)
	require.NotNil(t, total.Scale)
	assert.Equal(t, 10, *total.Precision)
	assert.Equal(t, 2, *total.Scale)

	rate := table.Attributes[1]
	require.NotNil(t, rate.Precision)
	require.NotNil(t, rate.Scale)
	assert.Equal(t, 5, *rate.Precision)
	assert.Equal(t, 0, *rate.Scale)
}

func TestParseConcurrentUse(t *testing.T) {
	parser := NewParser()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			table, err := parser.Parse(sampleDCLGEN)
			assert.NoError(t, err)
			assert.Equal(t, "EIP_ADT_TRAIL", table.TableName)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestParseFixedFormatIdentificationArea(t *testing.T) {
	var sb strings.Builder
	pad := func(content string) string {
		for len(content) < 72 {
			content += " "
		}
		return content + "00010000"
	}
	sb.WriteString(pad("000100     EXEC SQL DECLARE PADDED TABLE") + "\n")
	sb.WriteString(pad("000200     ( C_CODE                         CHAR(4) NOT NULL") + "\n")
	sb.WriteString(pad("000300     ) END-EXEC.") + "\n")

	table, err := NewParser().Parse(sb.String())
	require.NoError(t, err)

	assert.Equal(t, "PADDED", table.TableName)
	require.Len(t, table.Attributes, 1)
	require.NotNil(t, table.Attributes[0].Length)
	assert.Equal(t, 4, *table.Attributes[0].Length)
}
