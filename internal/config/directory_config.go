package config

// DirectoryConfig controls the Directory Driver (§6).
type DirectoryConfig struct {
	ChunkSize    int `mapstructure:"chunk_size" json:"chunk_size"`
	ChunkOverlap int `mapstructure:"chunk_overlap" json:"chunk_overlap"`
	MinChunkSize int `mapstructure:"min_chunk_size" json:"min_chunk_size"`

	MaxDepth       int  `mapstructure:"max_depth" json:"max_depth"`
	MaxFiles       int  `mapstructure:"max_files" json:"max_files"`
	FollowSymlinks bool `mapstructure:"follow_symlinks" json:"follow_symlinks"`

	IgnorePatterns []string `mapstructure:"ignore_patterns" json:"ignore_patterns"`
	OnlyExtensions []string `mapstructure:"only_extensions" json:"only_extensions"`

	ExtractTextFiles     bool `mapstructure:"extract_text_files" json:"extract_text_files"`
	ExtractConfigFiles   bool `mapstructure:"extract_config_files" json:"extract_config_files"`
	ExtractDocumentation bool `mapstructure:"extract_documentation" json:"extract_documentation"`

	RecordBinaryFiles         bool `mapstructure:"record_binary_files" json:"record_binary_files"`
	IncludeDirectoryStructure bool `mapstructure:"include_directory_structure" json:"include_directory_structure"`

	// WorkerPoolSize sizes the Directory Driver's bounded worker pool (§5).
	// Defaults to runtime.NumCPU(); set to 1 for deterministic single-
	// threaded tests.
	WorkerPoolSize int `mapstructure:"worker_pool_size" json:"worker_pool_size"`
}

// DefaultIgnorePatterns is the minimum baseline from spec §6: version-control
// metadata, build caches, editor/OS files, and common binary/media
// extensions.
var DefaultIgnorePatterns = []string{
	".git", ".hg", ".svn",
	"__pycache__", "node_modules", "target", "build", "dist", ".venv",
	".idea", ".vscode", ".DS_Store", "*.swp",
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.ico", "*.pdf",
	"*.zip", "*.tar", "*.gz", "*.exe", "*.dll", "*.so", "*.dylib",
	"*.class", "*.pyc", "*.o", "*.a",
}

// DefaultDirectoryConfig returns the defaults enumerated in spec §6.
func DefaultDirectoryConfig() DirectoryConfig {
	patterns := make([]string, len(DefaultIgnorePatterns))
	copy(patterns, DefaultIgnorePatterns)

	return DirectoryConfig{
		ChunkSize:                 512,
		ChunkOverlap:              50,
		MinChunkSize:              100,
		MaxDepth:                  10,
		MaxFiles:                  10000,
		FollowSymlinks:            false,
		IgnorePatterns:            patterns,
		OnlyExtensions:            nil,
		ExtractTextFiles:          true,
		ExtractConfigFiles:        true,
		ExtractDocumentation:      true,
		RecordBinaryFiles:         false,
		IncludeDirectoryStructure: true,
		WorkerPoolSize:            0, // 0 means "use runtime.NumCPU()"
	}
}
