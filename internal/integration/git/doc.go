// Package git reads repository metadata for the editor by shelling out
// to the git command line tool.
//
// Repositories are discovered by walking up from a path until a .git
// entry is found:
//
//	repo, err := git.Discover(cwd)
//	if errors.Is(err, git.ErrNotRepository) {
//	    // not inside a repository; callers stay silent
//	}
//
//	branch, _ := repo.Branch()
//	url, _ := repo.FileURL("internal/app/app.go", 10, 12)
package git
