/*
Package router defines the HTTP route table.

NewRouter wires every handler onto a Go 1.22+ ServeMux:

	mux := router.NewRouter(db, cfg)
	server := http.Server{Handler: middleware.CORS(mux)}

Routes come in two flavors: public (logging only) and authenticated
(logging + session resolution + RequireUser). Browsing is public:
listing, detail, tags, recent comments, username resolution and reading
admin settings. Submission, edits, comments, profile updates and
setting writes require a session. Voting is deliberately open, matching
the application's anonymous-vote behavior.
*/
package router
