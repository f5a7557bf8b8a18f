// Package cli implements blogctl, the command-line front end of the blog.
//
// Commands
//
//	register        create an account and log in
//	login           log in and remember the session
//	logout          forget the stored session
//	posts           list posts, newest first
//	show <id>       print one post
//	create          write a new post (requires login)
//	edit <id>       change title and/or content of your post
//	delete <id>     delete your post
//
// Without a command the app starts an interactive prompt accepting the same
// commands plus help and exit.
package cli
