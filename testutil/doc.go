/*
Package testutil provides shared helpers for tests.

SetupTestDB opens an in-memory SQLite database with the production
schema applied, so store and handler tests run hermetically without a
server. Seed helpers (CreateTestUser, CreateTestLink, CreateTestComment)
insert fixtures directly; TokenFor mints session tokens for
authenticated requests; MakeRequest/AssertStatus/AssertJSON cover the
httptest boilerplate.
*/
package testutil
