// Package httpapi exposes the core solver and the attrition EDA summary over
// HTTP, standing in for the original project's FastAPI app (src/api/main.py)
// and the two Streamlit dashboards. Only the JSON data endpoints a dashboard
// frontend would call are implemented here; rendering the dashboards
// themselves is downstream presentation, outside this repository's scope.
package httpapi
