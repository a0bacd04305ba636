package postgres

import (
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/phrazzld/bookshelf-api/internal/domain"
)

const (
	dialectPostgres = "postgres"

	tableBooks   = "books"
	tableAuthors = "authors"
	aliasBook    = "b"
	aliasAuthor  = "a"

	colID          = "id"
	colTitle       = "title"
	colDescription = "description"
	colAuthorID    = "author_id"
	colName        = "name"
	colAuthorName  = "author_name"
)

var (
	builder = goqu.Dialect(dialectPostgres)

	bookColumns = []interface{}{colID, colTitle, colDescription, colAuthorID}
)

// bookRow is the scan target for book queries. AuthorName is only populated
// by the joined queries and is NULL when the referenced author is gone.
type bookRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	AuthorID    int64          `db:"author_id"`
	AuthorName  sql.NullString `db:"author_name"`
}

func (r bookRow) toBook() *domain.Book {
	return &domain.Book{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		AuthorID:    r.AuthorID,
	}
}

func (r bookRow) toBookWithAuthor() *domain.BookWithAuthor {
	result := &domain.BookWithAuthor{Book: *r.toBook()}
	if r.AuthorName.Valid {
		result.Author = &domain.Author{ID: r.AuthorID, Name: r.AuthorName.String}
	}
	return result
}

type authorRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// booksWithAuthorQuery selects books left-joined to their author's name.
func booksWithAuthorQuery() *goqu.SelectDataset {
	return builder.
		From(goqu.T(tableBooks).As(aliasBook)).
		LeftJoin(
			goqu.T(tableAuthors).As(aliasAuthor),
			goqu.On(goqu.I(aliasAuthor+"."+colID).Eq(goqu.I(aliasBook+"."+colAuthorID))),
		).
		Select(
			goqu.I(aliasBook+"."+colID),
			goqu.I(aliasBook+"."+colTitle),
			goqu.I(aliasBook+"."+colDescription),
			goqu.I(aliasBook+"."+colAuthorID),
			goqu.I(aliasAuthor+"."+colName).As(colAuthorName),
		).
		Prepared(true)
}

func buildListBooksQuery() (string, []interface{}, error) {
	return booksWithAuthorQuery().
		Order(goqu.I(aliasBook + "." + colID).Asc()).
		ToSQL()
}

func buildGetBookWithAuthorQuery(id int64) (string, []interface{}, error) {
	return booksWithAuthorQuery().
		Where(goqu.I(aliasBook + "." + colID).Eq(id)).
		ToSQL()
}

func buildGetBookQuery(id int64) (string, []interface{}, error) {
	return builder.
		From(tableBooks).
		Select(bookColumns...).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

func buildInsertBookQuery(book *domain.Book) (string, []interface{}, error) {
	return builder.
		Insert(tableBooks).
		Rows(goqu.Record{
			colTitle:       book.Title,
			colDescription: book.Description,
			colAuthorID:    book.AuthorID,
		}).
		Returning(colID).
		Prepared(true).
		ToSQL()
}

func buildUpdateBookQuery(book *domain.Book) (string, []interface{}, error) {
	return builder.
		Update(tableBooks).
		Set(goqu.Record{
			colTitle:       book.Title,
			colDescription: book.Description,
			colAuthorID:    book.AuthorID,
		}).
		Where(goqu.C(colID).Eq(book.ID)).
		Returning(bookColumns...).
		Prepared(true).
		ToSQL()
}

func buildDeleteBookQuery(id int64) (string, []interface{}, error) {
	return builder.
		Delete(tableBooks).
		Where(goqu.C(colID).Eq(id)).
		Returning(bookColumns...).
		Prepared(true).
		ToSQL()
}

func buildGetAuthorQuery(id int64) (string, []interface{}, error) {
	return builder.
		From(tableAuthors).
		Select(colID, colName).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

func buildInsertAuthorQuery(author *domain.Author) (string, []interface{}, error) {
	return builder.
		Insert(tableAuthors).
		Rows(goqu.Record{colName: author.Name}).
		Returning(colID).
		Prepared(true).
		ToSQL()
}
