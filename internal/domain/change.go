package domain

// ChangeKind is the closed set of per-file change codes reported by
// `git status --porcelain=v1`.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeModified
	ChangeDeleted
	ChangeRenamed
	ChangeCopied
	ChangeTypeChanged
	ChangeUnmerged
	ChangeUntracked
)

// String returns a short human-readable label for the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeDeleted:
		return "deleted"
	case ChangeRenamed:
		return "renamed"
	case ChangeCopied:
		return "copied"
	case ChangeTypeChanged:
		return "type changed"
	case ChangeUnmerged:
		return "unmerged"
	case ChangeUntracked:
		return "untracked"
	}
	return "unknown"
}

// DecodeChangeKind maps a single porcelain status character to a ChangeKind.
// It is total: blank and every unrecognized character decode to (0, false)
// rather than an error. Unknown codes are tolerated so that newer git
// versions cannot break the parse.
func DecodeChangeKind(c byte) (ChangeKind, bool) {
	switch c {
	case 'A':
		return ChangeAdded, true
	case 'M':
		return ChangeModified, true
	case 'D':
		return ChangeDeleted, true
	case 'R':
		return ChangeRenamed, true
	case 'C':
		return ChangeCopied, true
	case 'T':
		return ChangeTypeChanged, true
	case 'U':
		return ChangeUnmerged, true
	case '?':
		return ChangeUntracked, true
	default:
		return 0, false
	}
}

// FileRecord is the parsed status of a single file. Staged and Unstaged are
// nil when the corresponding column carries no change. Untracked files are
// represented with Staged set to ChangeUntracked and Unstaged nil.
type FileRecord struct {
	// Path may embed a "(renamed from <old>)" annotation for renames.
	Path     string
	Staged   *ChangeKind
	Unstaged *ChangeKind
}

// HasStagedChange reports whether the record carries a staged change,
// untracked files excluded.
func (f FileRecord) HasStagedChange() bool {
	return f.Staged != nil && *f.Staged != ChangeUntracked
}

// IsUntracked reports whether the record represents an untracked file.
func (f FileRecord) IsUntracked() bool {
	return f.Staged != nil && *f.Staged == ChangeUntracked
}

// RepositoryState is an immutable snapshot of the repository status: the
// branch header line plus one record per reported file, in report order.
type RepositoryState struct {
	BranchSummary string
	Files         []FileRecord
}

// HasStagedChanges reports whether any file carries a staged change.
func (s *RepositoryState) HasStagedChanges() bool {
	for _, f := range s.Files {
		if f.HasStagedChange() {
			return true
		}
	}
	return false
}

// BranchRecord is one entry of the local branch listing.
type BranchRecord struct {
	Name      string
	IsCurrent bool
}
