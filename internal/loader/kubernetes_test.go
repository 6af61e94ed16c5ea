package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepal/secreport/internal/models"
)

func TestPolarisLoader_Parse(t *testing.T) {
	l := NewPolarisLoader()

	input := `{
		"results": [
			{
				"kind": "Deployment",
				"namespace": "default",
				"checks": [
					{"name": "runAsNonRoot", "message": "Container should not run as root", "result": "FAIL"},
					{"name": "livenessProbe", "message": "Liveness probe is configured", "result": "PASS"},
					{"name": "memoryLimits", "message": "Memory limits should be set", "result": "FAIL"}
				]
			},
			{
				"kind": "StatefulSet",
				"namespace": "db",
				"checks": [
					{"name": "readinessProbe", "message": "Readiness probe is configured", "result": "PASS"}
				]
			}
		]
	}`

	findings, err := l.Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, findings, 2, "only failing checks become findings")

	f := findings[0]
	assert.Equal(t, "Polaris", f.Tool)
	assert.Equal(t, models.CategoryKubernetes, f.Category)
	assert.Equal(t, models.SeverityMedium, f.Severity, "Polaris has no severity concept")
	assert.Equal(t, "runAsNonRoot", f.Title)
	assert.Equal(t, "Deployment", f.Attributes["resource"])
	assert.Equal(t, "default", f.Attributes["namespace"])

	assert.Equal(t, "memoryLimits", findings[1].Title)
}

func TestKubeBenchLoader_Parse(t *testing.T) {
	l := NewKubeBenchLoader()

	input := `{
		"tests": [
			{
				"results": [
					{
						"test_number": "1.1.1",
						"test_desc": "Ensure that the API server pod specification file permissions are set to 644",
						"test_info": ["Run the below command on the master node.", "chmod 644 /etc/kubernetes/manifests/kube-apiserver.yaml"],
						"status": "FAIL"
					},
					{
						"test_number": "1.1.2",
						"test_desc": "Ensure that the API server pod specification file ownership is set to root:root",
						"test_info": ["No action required."],
						"status": "PASS"
					},
					{
						"test_number": "1.1.3",
						"test_desc": "Some warn-level check",
						"test_info": [],
						"status": "WARN"
					}
				]
			}
		]
	}`

	findings, err := l.Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, findings, 1, "only FAIL results become findings")

	f := findings[0]
	assert.Equal(t, "Kube-bench", f.Tool)
	assert.Equal(t, models.CategoryKubernetes, f.Category)
	assert.Equal(t, models.SeverityMedium, f.Severity, "kube-bench has no severity concept")
	assert.Equal(t, "Ensure that the API server pod specification file permissions are set to 644", f.Title)
	assert.Equal(t, "Run the below command on the master node.; chmod 644 /etc/kubernetes/manifests/kube-apiserver.yaml", f.Description)
	assert.Equal(t, "1.1.1", f.Attributes["test_number"])
}

func TestKubernetesLoaders_MalformedInput(t *testing.T) {
	for _, l := range []Loader{NewPolarisLoader(), NewKubeBenchLoader()} {
		_, err := l.Parse([]byte("[not an object"))
		require.Error(t, err, "loader %s should reject malformed input", l.Tool())
	}
}
