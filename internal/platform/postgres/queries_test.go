package postgres

import (
	"database/sql"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListBooksQuery(t *testing.T) {
	query, args, err := buildListBooksQuery()
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "books" AS "b"`)
	assert.Contains(t, query, `LEFT JOIN "authors" AS "a" ON ("a"."id" = "b"."author_id")`)
	assert.Contains(t, query, `"a"."name" AS "author_name"`)
	assert.Contains(t, query, `ORDER BY "b"."id" ASC`)
	assert.Empty(t, args)
}

func TestBuildGetBookWithAuthorQuery(t *testing.T) {
	query, args, err := buildGetBookWithAuthorQuery(7)
	require.NoError(t, err)

	assert.Contains(t, query, `LEFT JOIN "authors"`)
	assert.Contains(t, query, `WHERE ("b"."id" = $1)`)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestBuildGetBookQuery(t *testing.T) {
	query, args, err := buildGetBookQuery(3)
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "books"`)
	assert.NotContains(t, query, "JOIN")
	assert.Contains(t, query, `WHERE ("id" = $1)`)
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestBuildInsertBookQuery(t *testing.T) {
	book := &domain.Book{Title: "Dune", Description: "Desert planet saga", AuthorID: 1}

	query, args, err := buildInsertBookQuery(book)
	require.NoError(t, err)

	assert.Contains(t, query, `INSERT INTO "books"`)
	assert.Contains(t, query, `RETURNING "id"`)
	assert.NotContains(t, query, "Dune", "values are bound, not inlined")
	assert.ElementsMatch(t, []interface{}{"Dune", "Desert planet saga", int64(1)}, args)
}

func TestBuildUpdateBookQuery(t *testing.T) {
	book := &domain.Book{ID: 9, Title: "Dune Messiah", Description: "Sequel", AuthorID: 2}

	query, args, err := buildUpdateBookQuery(book)
	require.NoError(t, err)

	assert.Contains(t, query, `UPDATE "books" SET`)
	assert.Contains(t, query, `"title"=`)
	assert.Contains(t, query, `"description"=`)
	assert.Contains(t, query, `"author_id"=`)
	assert.Contains(t, query, `WHERE ("id" = $4)`)
	assert.Contains(t, query, `RETURNING "id", "title", "description", "author_id"`)
	assert.ElementsMatch(t, []interface{}{"Dune Messiah", "Sequel", int64(2), int64(9)}, args)
}

func TestBuildDeleteBookQuery(t *testing.T) {
	query, args, err := buildDeleteBookQuery(5)
	require.NoError(t, err)

	assert.Contains(t, query, `DELETE FROM "books" WHERE ("id" = $1)`)
	assert.Contains(t, query, `RETURNING "id", "title", "description", "author_id"`)
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestBuildAuthorQueries(t *testing.T) {
	query, args, err := buildGetAuthorQuery(11)
	require.NoError(t, err)
	assert.Contains(t, query, `SELECT "id", "name" FROM "authors" WHERE ("id" = $1)`)
	assert.Equal(t, []interface{}{int64(11)}, args)

	query, args, err = buildInsertAuthorQuery(&domain.Author{Name: "Frank Herbert"})
	require.NoError(t, err)
	assert.Contains(t, query, `INSERT INTO "authors" ("name") VALUES ($1) RETURNING "id"`)
	assert.Equal(t, []interface{}{"Frank Herbert"}, args)
}

func TestBookRowConversion(t *testing.T) {
	row := bookRow{ID: 1, Title: "Dune", Description: "Desert planet saga", AuthorID: 4,
		AuthorName: sql.NullString{String: "Frank Herbert", Valid: true}}

	withAuthor := row.toBookWithAuthor()
	require.NotNil(t, withAuthor.Author)
	assert.Equal(t, "Frank Herbert", withAuthor.Author.Name)
	assert.Equal(t, int64(4), withAuthor.Author.ID)
	assert.Equal(t, "Dune", withAuthor.Title)

	row.AuthorName = sql.NullString{}
	assert.Nil(t, row.toBookWithAuthor().Author, "dangling reference has no author")
}
