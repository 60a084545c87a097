package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"sigs.k8s.io/yaml"

	"nacepublish.run/internal/probe"
)

const (
	// DefaultFileName is picked up from the project directory when
	// no explicit config path is given.
	DefaultFileName = "nace-publish.yaml"

	VenvEnvvarName              = "NACE_PUBLISH_VENV"
	StagingRepositoryEnvvarName = "NACE_PUBLISH_STAGING_REPOSITORY"
)

// Tool is an external executable the run depends on.
type Tool struct {
	Name string `json:"name"`
	// Install is shown to the operator when the tool is missing.
	Install string `json:"install"`
}

// Config holds everything a publish run needs to know about the project.
type Config struct {
	ProjectDir string `json:"projectDir,omitempty"`
	VenvDir    string `json:"venvDir,omitempty"`
	DistDir    string `json:"distDir,omitempty"`

	// Package is the distribution name on the index.
	Package string `json:"package,omitempty"`
	// Version is only compared against the artifacts when set.
	Version string `json:"version,omitempty"`
	// Module is the importable python module exposing the lookup API.
	Module   string `json:"module,omitempty"`
	DataFile string `json:"dataFile,omitempty"`

	Tools []Tool `json:"tools,omitempty"`
	// RequiredFiles must all exist in the project directory.
	RequiredFiles []string `json:"requiredFiles,omitempty"`
	// DescriptorFiles must exist at least once.
	DescriptorFiles []string `json:"descriptorFiles,omitempty"`
	// CleanPatterns are glob patterns matched against top level entries.
	CleanPatterns []string `json:"cleanPatterns,omitempty"`
	// BuildRequirements get installed into the environment on every run.
	BuildRequirements []string `json:"buildRequirements,omitempty"`

	SmokeKey      string `json:"smokeKey,omitempty"`
	// PlainKey defaults to SmokeKey without dots.
	PlainKey      string `json:"plainKey,omitempty"`
	SearchKeyword string `json:"searchKeyword,omitempty"`
	TestScript    string `json:"testScript,omitempty"`

	// RequiredMembers are basenames that must appear in the wheel.
	RequiredMembers []string `json:"requiredMembers,omitempty"`

	StagingRepository    string `json:"stagingRepository,omitempty"`
	StagingIndexURL      string `json:"stagingIndexURL,omitempty"`
	ProductionRepository string `json:"productionRepository,omitempty"`
}

func (c *Config) Default() {
	if c.ProjectDir == "" {
		c.ProjectDir = "."
	}
	if c.VenvDir == "" {
		c.VenvDir = ".venv"
	}
	if c.DistDir == "" {
		c.DistDir = "dist"
	}
	if c.Package == "" {
		c.Package = "naceconverter"
	}
	if c.Module == "" {
		c.Module = "NACEConverter"
	}
	if c.DataFile == "" {
		c.DataFile = "nacecodes.csv"
	}
	if len(c.Tools) == 0 {
		c.Tools = []Tool{
			{Name: "uv", Install: "curl -LsSf https://astral.sh/uv/install.sh | sh"},
			{Name: "python3", Install: "install Python 3 from https://www.python.org/downloads/"},
		}
	}
	if len(c.RequiredFiles) == 0 {
		c.RequiredFiles = []string{c.DataFile, "README.md"}
	}
	if len(c.DescriptorFiles) == 0 {
		c.DescriptorFiles = []string{"setup.py", "pyproject.toml"}
	}
	if len(c.CleanPatterns) == 0 {
		c.CleanPatterns = []string{"build", "dist", "*.egg-info", "__pycache__", ".pytest_cache"}
	}
	if len(c.BuildRequirements) == 0 {
		c.BuildRequirements = []string{"build", "twine", "wheel", "setuptools"}
	}
	if c.SmokeKey == "" {
		c.SmokeKey = "01.11"
	}
	if c.PlainKey == "" {
		c.PlainKey = probe.NormalizeCode(c.SmokeKey)
	}
	if c.SearchKeyword == "" {
		c.SearchKeyword = "agriculture"
	}
	if c.TestScript == "" {
		c.TestScript = "test_comprehensive.py"
	}
	if len(c.RequiredMembers) == 0 {
		c.RequiredMembers = []string{c.Module + ".py", "__init__.py", c.DataFile}
	}
	if c.StagingRepository == "" {
		c.StagingRepository = "testpypi"
	}
	if c.StagingIndexURL == "" {
		c.StagingIndexURL = "https://test.pypi.org/simple/"
	}
	if c.ProductionRepository == "" {
		c.ProductionRepository = "pypi"
	}
}

// ApplyEnvironment overrides fields from NACE_PUBLISH_* variables.
func (c *Config) ApplyEnvironment() {
	if v, ok := os.LookupEnv(VenvEnvvarName); ok && v != "" {
		c.VenvDir = v
	}
	if v, ok := os.LookupEnv(StagingRepositoryEnvvarName); ok && v != "" {
		c.StagingRepository = v
	}
}

// Path resolves p relative to the project directory.
func (c *Config) Path(p ...string) string {
	if len(p) > 0 && filepath.IsAbs(p[0]) {
		return filepath.Join(p...)
	}

	return filepath.Join(append([]string{c.ProjectDir}, p...)...)
}

// VenvPython is the interpreter inside the isolated environment.
func (c *Config) VenvPython() string {
	if runtime.GOOS == "windows" {
		return c.Path(c.VenvDir, "Scripts", "python.exe")
	}

	return c.Path(c.VenvDir, "bin", "python")
}

// Load reads the config file at path. A missing file at the default
// location is not an error, a missing explicitly requested file is.
func Load(path, projectDir string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(projectDirOrDot(projectDir), DefaultFileName)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if projectDir != "" {
		cfg.ProjectDir = projectDir
	}

	if err := cfg.loadPyProject(); err != nil {
		return nil, err
	}

	cfg.ApplyEnvironment()
	cfg.Default()

	// tools run with the project as working directory
	abs, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}
	cfg.ProjectDir = abs

	return cfg, nil
}

func projectDirOrDot(dir string) string {
	if dir == "" {
		return "."
	}

	return dir
}
