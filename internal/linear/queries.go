package linear

// GraphQL documents sent to the Linear API. Each operation uses one
// fixed document; calls differ only in their variables.

const teamsQuery = `
query {
  teams {
    nodes {
      id
      name
      key
    }
  }
}
`

const projectsQuery = `
query GetProjects($teamId: String!) {
  team(id: $teamId) {
    projects {
      nodes {
        id
        name
        description
        state
      }
    }
  }
}
`

const workflowStatesQuery = `
query GetStates($teamId: String!) {
  team(id: $teamId) {
    states {
      nodes {
        id
        name
        type
        color
      }
    }
  }
}
`

const createIssueMutation = `
mutation CreateIssue(
  $teamId: String!
  $title: String!
  $description: String
  $priority: Int
  $projectId: String
  $stateId: String
  $labelIds: [String!]
) {
  issueCreate(
    input: {
      teamId: $teamId
      title: $title
      description: $description
      priority: $priority
      projectId: $projectId
      stateId: $stateId
      labelIds: $labelIds
    }
  ) {
    success
    issue {
      id
      identifier
      title
      description
      priority
      url
      state {
        name
      }
    }
  }
}
`

const updateIssueMutation = `
mutation UpdateIssue(
  $issueId: String!
  $stateId: String
  $title: String
  $description: String
) {
  issueUpdate(
    id: $issueId
    input: {
      stateId: $stateId
      title: $title
      description: $description
    }
  ) {
    success
    issue {
      id
      identifier
      title
      state {
        name
      }
      url
    }
  }
}
`

const issueQuery = `
query GetIssue($identifier: String!) {
  issue(identifier: $identifier) {
    id
    identifier
    title
    description
    priority
    state {
      id
      name
    }
    url
    labels {
      nodes {
        name
      }
    }
  }
}
`

const searchIssuesQuery = `
query SearchIssues($teamId: String!, $query: String!) {
  team(id: $teamId) {
    issues(filter: {query: $query}) {
      nodes {
        id
        identifier
        title
        state {
          name
        }
        priority
        url
      }
    }
  }
}
`
