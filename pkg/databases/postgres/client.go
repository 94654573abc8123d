package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/labfi/labfi-api/internal/interfaces"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second

	idColumn = "id"
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL databases.
// Table and column identifiers interpolated into queries come from repository
// constants, never from request input; values always travel as placeholders.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewPostgresDatabaseClient(maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) interfaces.DBClient {
	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = DefaultMaxIdleConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = DefaultConnMaxLifetime
	}

	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single row into a PostgreSQL table.
// 'document' is expected to be a map[string]interface{}; a UUID id is
// generated when the document does not carry one.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (interface{}, error) {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL InsertOne expects document to be map[string]interface{}")
	}

	if _, exists := docMap[idColumn]; !exists {
		docMap[idColumn] = uuid.New().String()
	}

	columns := sortedKeys(docMap)
	placeholders := make([]string, 0, len(columns))
	values := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		values = append(values, docMap[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201 -- identifiers come from repository constants

	var insertedID interface{}
	err := p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID)
	if err != nil {
		return nil, err
	}
	return insertedID, nil
}

// FindOne retrieves a single row from a PostgreSQL table.
// 'filter' is a map[string]interface{} for the WHERE clause and 'result'
// must be a *map[string]interface{}; the repository layer converts the raw
// row into its model type.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) error {
	resultMap, ok := result.(*map[string]interface{})
	if !ok {
		return fmt.Errorf("PostgreSQL FindOne expects result to be *map[string]interface{}")
	}

	rows, err := p.FindMany(ctx, tableName, filter, nil)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return sql.ErrNoRows
	}

	row, ok := rows[0].(map[string]interface{})
	if !ok {
		return fmt.Errorf("PostgreSQL FindOne: unexpected row type %T", rows[0])
	}
	*resultMap = row
	return nil
}

// FindMany retrieves the rows matching the filter as maps keyed by column
// name, honoring the sort order and projection from opts.
func (p *PostgresDatabaseClient) FindMany(ctx context.Context, tableName string, filter interfaces.Document, opts *interfaces.FindOptions) ([]interfaces.Document, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("PostgreSQL FindMany expects filter to be map[string]interface{}")
	}

	whereClauses := make([]string, 0, len(filterMap))
	whereValues := make([]interface{}, 0, len(filterMap))
	paramCount := 1
	for _, col := range sortedKeys(filterMap) {
		val := filterMap[col]
		if list, isList := val.([]string); isList {
			// IN-style filter for id lists
			inPlaceholders := make([]string, 0, len(list))
			for _, item := range list {
				inPlaceholders = append(inPlaceholders, fmt.Sprintf("$%d", paramCount))
				whereValues = append(whereValues, item)
				paramCount++
			}
			if len(inPlaceholders) == 0 {
				// empty IN list matches nothing
				whereClauses = append(whereClauses, "FALSE")
				continue
			}
			whereClauses = append(whereClauses, fmt.Sprintf("%s IN (%s)", col, strings.Join(inPlaceholders, ", ")))
			continue
		}
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		whereValues = append(whereValues, val)
		paramCount++
	}
	whereString := ""
	if len(whereClauses) > 0 {
		whereString = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	selectColumns := "*"
	orderString := ""
	if opts != nil {
		if len(opts.Projection) > 0 {
			selectColumns = strings.Join(opts.Projection, ", ")
		}
		if len(opts.Sort) > 0 {
			orderClauses := make([]string, 0, len(opts.Sort))
			for _, field := range sortedKeys(toInterfaceMap(opts.Sort)) {
				direction := "ASC"
				if opts.Sort[field] < 0 {
					direction = "DESC"
				}
				orderClauses = append(orderClauses, fmt.Sprintf("%s %s", field, direction))
			}
			orderString = " ORDER BY " + strings.Join(orderClauses, ", ")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s%s", selectColumns, tableName, whereString, orderString) // #nosec G201 -- identifiers come from repository constants

	rows, err := p.db.QueryContext(ctx, query, whereValues...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []interfaces.Document
	for rows.Next() {
		columnPointers := make([]interface{}, len(columns))
		columnValues := make([]interface{}, len(columns))
		for i := range columns {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		rowMap := make(map[string]interface{}, len(columns))
		for i, colName := range columns {
			rowMap[colName] = columnValues[i]
		}
		results = append(results, rowMap)
	}

	return results, rows.Err()
}

// UpdateOne applies the given column updates to the rows matching the filter.
// Returns the count of affected rows.
func (p *PostgresDatabaseClient) UpdateOne(ctx context.Context, tableName string, filter interfaces.Document, update interfaces.Document) (int64, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("PostgreSQL UpdateOne expects filter to be map[string]interface{}")
	}
	updateMap, ok := update.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("PostgreSQL UpdateOne expects update to be map[string]interface{}")
	}
	if len(updateMap) == 0 {
		return 0, fmt.Errorf("PostgreSQL UpdateOne requires a non-empty update")
	}

	setClauses := make([]string, 0, len(updateMap))
	values := make([]interface{}, 0, len(updateMap)+len(filterMap))
	paramCount := 1
	for _, col := range sortedKeys(updateMap) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		values = append(values, updateMap[col])
		paramCount++
	}

	whereClauses := make([]string, 0, len(filterMap))
	for _, col := range sortedKeys(filterMap) {
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		values = append(values, filterMap[col])
		paramCount++
	}
	whereString := ""
	if len(whereClauses) > 0 {
		whereString = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", tableName, strings.Join(setClauses, ", "), whereString) // #nosec G201 -- identifiers come from repository constants

	res, err := p.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOne removes the rows matching the filter.
// Returns the count of deleted rows.
func (p *PostgresDatabaseClient) DeleteOne(ctx context.Context, tableName string, filter interfaces.Document) (int64, error) {
	filterMap, ok := filter.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("PostgreSQL DeleteOne expects filter to be map[string]interface{}")
	}
	if len(filterMap) == 0 {
		return 0, fmt.Errorf("PostgreSQL DeleteOne requires a non-empty filter")
	}

	whereClauses := make([]string, 0, len(filterMap))
	values := make([]interface{}, 0, len(filterMap))
	paramCount := 1
	for _, col := range sortedKeys(filterMap) {
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		values = append(values, filterMap[col])
		paramCount++
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", tableName, strings.Join(whereClauses, " AND ")) // #nosec G201 -- identifiers come from repository constants

	res, err := p.db.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// EnsureSchema executes a DDL statement for the table. 'schema' must be the
// statement string (CREATE TABLE IF NOT EXISTS ... / CREATE UNIQUE INDEX ...).
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, schema interfaces.Document) error {
	ddl, ok := schema.(string)
	if !ok {
		return fmt.Errorf("EnsureSchema: expected a DDL string for PostgreSQL")
	}

	_, err := p.db.ExecContext(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to ensure schema for %s: %w", tableName, err)
	}
	return nil
}

// Ping checks the health of the database connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("PostgreSQL client is not connected")
	}
	return p.db.PingContext(ctx)
}

// sortedKeys returns the map keys in a stable order so generated SQL is
// deterministic.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toInterfaceMap(m map[string]int) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
