// Package pyenv bootstraps the Python side of the application: the
// virtual environment, pip, and the dependency manifest.
//
// # Environment Lifecycle
//
// Env checks for the pyvenv.cfg marker before creating anything, so
// repeated launches reuse the existing environment. All Python
// invocations after creation go through the venv's own interpreter
// (bin/python, or Scripts\python.exe on Windows), never the system one.
//
// # Manifest Resolution
//
// Dependencies may live at the repository root (requirements.txt) or
// nested under backend/. FindManifest checks the candidates in that
// fixed order and returns the first that exists; if neither does it
// returns ErrNoManifest, which callers treat as fatal.
//
// # Command Execution
//
// External commands run through the Runner interface. The production
// implementation forwards child output to the launcher's own streams;
// tests substitute a recording fake.
package pyenv
